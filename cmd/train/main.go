// Command train обучает модель по CSV и сохраняет артефакты для сервера.
package main

import (
	"flag"
	"fmt"
	"os"

	"diabetes-predictor/internal/predictor"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})

	data := flag.String("data", "diabetes_data_large.csv", "training dataset (CSV with header)")
	modelOut := flag.String("model", "diabetes-prediction-model.json", "output path for the model")
	encoderOut := flag.String("encoder", "label_encoder.json", "output path for the FamilyHistory encoder")
	trees := flag.Int("trees", 100, "number of trees")
	testSize := flag.Float64("test-size", 0.1, "fraction of rows held out for evaluation")
	splitSeed := flag.Int64("split-seed", 60, "seed for the train/test split")
	seed := flag.Int64("seed", 1, "seed for bootstrap and feature sampling")
	flag.Parse()

	f, err := os.Open(*data)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open dataset")
	}
	ds, err := predictor.LoadDataset(f)
	_ = f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("path", *data).Msg("failed to load dataset")
	}

	fmt.Println("Unique FamilyHistory values:", ds.Encoder.Classes)

	train, test := ds.Split(*testSize, *splitSeed)

	cfg := predictor.DefaultTrainConfig()
	cfg.NTrees = *trees
	cfg.Seed = *seed
	forest, err := predictor.Fit(train, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to train model")
	}

	if len(test.Y) > 0 {
		acc, err := predictor.Accuracy(forest, test)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to evaluate model")
		}
		fmt.Println("Accuracy:", acc*100, "%")
	}

	if err := forest.Save(*modelOut); err != nil {
		log.Fatal().Err(err).Msg("failed to save model")
	}
	if err := ds.Encoder.Save(*encoderOut); err != nil {
		log.Fatal().Err(err).Msg("failed to save encoder")
	}
	log.Info().Str("model", *modelOut).Str("encoder", *encoderOut).
		Int("rows", len(ds.Y)).Int("trees", len(forest.Trees)).Msg("artifacts saved")
}
