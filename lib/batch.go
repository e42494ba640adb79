package lib

import (
	"os"
	"path"
	"strings"
)

// Batch is the evaluation of one file of expressions, one per line. Blank
// lines and lines starting with '#' are skipped.
type Batch struct {
	Name    string
	Results []Result
}

// Result is the outcome for a single line. Exactly one of Value or Err is
// meaningful.
type Result struct {
	Expression string
	Value      float64
	Err        error
}

func ReadBatchesFromDir(dir string) ([]Batch, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	batches := []Batch{}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := path.Join(dir, file.Name())
		b, err := ReadBatchFromFile(filePath)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, nil
}

func ReadBatchFromFile(filePath string) (Batch, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return Batch{}, err
	}

	batch := Batch{
		Name:    batchNameFromPath(filePath),
		Results: []Result{},
	}

	// A bad line gets its own error result and never aborts the batch.
	for _, line := range strings.Split(string(bytes), "\n") {
		expression := strings.TrimSpace(line)
		if expression == "" || strings.HasPrefix(expression, "#") {
			continue
		}

		result := Result{Expression: expression}
		result.Value, result.Err = Eval(expression)
		batch.Results = append(batch.Results, result)
	}

	return batch, nil
}

func batchNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}
