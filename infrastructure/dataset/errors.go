package dataset

import "fmt"

// SchemaError indica que uma fonte não possui uma coluna obrigatória.
// Fatal: o pipeline aborta sem produzir saída parcial.
type SchemaError struct {
	Source string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("fonte %q não possui a coluna obrigatória %q", e.Source, e.Column)
}

// EmptyDatasetError indica que uma fonte foi lida com zero linhas.
// Fatal, como o SchemaError.
type EmptyDatasetError struct {
	Source string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("fonte %q não contém nenhuma linha", e.Source)
}
