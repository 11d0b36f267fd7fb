// Package main provides the preprocess CLI.
package main

import (
	"fmt"
	"os"

	"github.com/retraigo/preprocess/feature"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("preprocess %s\n", version)
			return
		case "tfidf":
			if err := runTfIdf(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "preprocess: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("preprocess - matrix-based feature engineering for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version          Show version")
	fmt.Println("  tfidf <files>    Print the TF-IDF weighted term matrix of the given documents")
}

// runTfIdf treats every file as one document, vectorizes with the whitespace
// tokenizer, and prints the weighted matrix as TSV with a term header.
func runTfIdf(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("tfidf: no input files")
	}

	docs := make([]string, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("tfidf: %w", err)
		}
		docs[i] = string(data)
	}

	cv := feature.NewCountVectorizer[float64](feature.SplitTokenizer{})
	tf, err := cv.FitTransform(docs)
	if err != nil {
		return fmt.Errorf("tfidf: %w", err)
	}
	weighted, err := feature.NewTfIdf[float64]().FitTransform(tf)
	if err != nil {
		return fmt.Errorf("tfidf: %w", err)
	}

	for j, term := range cv.Vocabulary() {
		if j > 0 {
			fmt.Print("\t")
		}
		fmt.Print(term)
	}
	fmt.Println()
	for _, row := range weighted.RowIter() {
		for c, v := range row {
			if c > 0 {
				fmt.Print("\t")
			}
			fmt.Printf("%.4f", v)
		}
		fmt.Println()
	}
	return nil
}
