package pipeline

import "github.com/go-gota/gota/dataframe"

// Transformer interface for fit/transform pattern.
type Transformer interface {
	Fit(df dataframe.DataFrame) error
	Transform(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits each step on the output of the previous one.
func (p *Pipeline) Fit(df dataframe.DataFrame) error {
	_, err := p.FitTransform(df)
	return err
}

func (p *Pipeline) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	var err error
	for _, step := range p.steps {
		if df, err = step.Transform(df); err != nil {
			return dataframe.DataFrame{}, err
		}
	}
	return df, nil
}

// FitTransform fits and applies every step in a single pass over df.
func (p *Pipeline) FitTransform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	var err error
	for _, step := range p.steps {
		if err = step.Fit(df); err != nil {
			return dataframe.DataFrame{}, err
		}
		if df, err = step.Transform(df); err != nil {
			return dataframe.DataFrame{}, err
		}
	}
	return df, nil
}
