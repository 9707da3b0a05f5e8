package pipeline

import "etl/pkg/dataprep"

// NewPreprocessor wires the two transform chains for a schema:
// numeric columns are mean-imputed then standardized, categorical columns are
// filled with their most frequent value then one-hot encoded.
func NewPreprocessor(s Schema) *ColumnTransformer {
	return NewColumnTransformer(
		Branch{
			Name:     "num",
			Columns:  s.Names(Numeric),
			Pipeline: NewPipeline(dataprep.NewMeanImputer(), dataprep.NewScaler()),
		},
		Branch{
			Name:     "cat",
			Columns:  s.Names(Categorical),
			Pipeline: NewPipeline(dataprep.NewMostFrequentImputer(), dataprep.NewOneHotEncoder()),
		},
	)
}
