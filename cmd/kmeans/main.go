package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/drakos74/k-means/infra/config"
	"github.com/drakos74/k-means/kmeans"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func defaultRun() config.Run {
	ints := make([]int64, 0)
	for i := int64(1); i <= 20; i++ {
		ints = append(ints, i)
	}
	return config.Run{
		Ints:     ints,
		Clusters: 4,
		Epochs:   100,
	}
}

func main() {
	path := flag.String("config", "", "json file describing the run")
	flag.Parse()

	cfg := defaultRun()
	if *path != "" {
		cfg = config.Run{}
		config.MustLoad(*path, &cfg)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("could not run k-means")
	}
}

// run clusters the configured data and prints the result.
// Integer data is clustered once as given and once converted to float.
func run(cfg config.Run, w io.Writer) error {
	if cfg.Level != "" {
		level, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		zerolog.SetGlobalLevel(level)
	}

	var opts []kmeans.Option
	if cfg.Seed != nil {
		opts = append(opts, kmeans.WithSeed(*cfg.Seed))
	}

	data := cfg.Data
	if len(cfg.Ints) > 0 {
		result, err := kmeans.Solve(cfg.Ints, cfg.Clusters, cfg.Epochs, opts...)
		if err != nil {
			return fmt.Errorf("could not cluster integer data: %w", err)
		}
		fmt.Fprintf(w, "result = %+v\n", result)

		data = make([]float64, len(cfg.Ints))
		for i, v := range cfg.Ints {
			data[i] = float64(v)
		}
	}

	result, err := kmeans.Solve(data, cfg.Clusters, cfg.Epochs, opts...)
	if err != nil {
		return fmt.Errorf("could not cluster float data: %w", err)
	}
	fmt.Fprintf(w, "result_float = %+v\n", result)

	for i, c := range result {
		st := c.Stats()
		log.Info().
			Int("cluster", i).
			Str("center", fmt.Sprintf("%.2f", c.Center())).
			Int("size", st.Size).
			Float64("stdev", st.StDev).
			Msg("cluster")
	}
	return nil
}
