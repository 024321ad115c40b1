package main

import (
	"context"
	"flag"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/veridex-labs/veridex/internal/config"
	"github.com/veridex-labs/veridex/internal/metrics"
	"github.com/veridex-labs/veridex/internal/scorefile"
	"github.com/veridex-labs/veridex/internal/utils/logger"
)

func main() {
	scoreArg := flag.String("score-file", "", "trial score file(s), comma separated, text or json, optionally .zst")
	keyPath := flag.String("key-file", "", "trial key file")
	priorsArg := flag.String("priors", "", "comma separated ascending target priors, overrides EVAL_PRIORS")
	unnormalized := flag.Bool("unnormalized", false, "report unnormalized DCF")
	logger.Init()

	if *scoreArg == "" || *keyPath == "" {
		log.Fatal().Msg("--score-file and --key-file are required")
	}

	cfg, err := config.LoadEvalEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load eval config")
	}

	priors := cfg.Priors
	if *priorsArg != "" {
		priors, err = config.ParsePriors(*priorsArg)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid --priors")
		}
	}
	normalize := cfg.Normalize && !*unnormalized

	key, err := loadKey(*keyPath)
	if err != nil {
		log.Fatal().Err(err).Str("key", *keyPath).Msg("failed to load trial key")
	}

	scorePaths := strings.Split(*scoreArg, ",")
	jobs := make([]metrics.BatchJob, 0, len(scorePaths))
	for _, path := range scorePaths {
		path = strings.TrimSpace(path)
		set, err := loadScoreSet(key, path)
		if err != nil {
			log.Fatal().Err(err).Str("scores", path).Msg("failed to load trials")
		}
		jobs = append(jobs, metrics.BatchJob{Name: path, Scores: *set})
	}

	results := metrics.EvaluateBatch(context.Background(), jobs, priors, normalize,
		metrics.WithWorkers(cfg.Workers))

	for i, res := range results {
		if res.Err != nil {
			log.Fatal().Err(res.Err).Str("scores", res.Name).Msg("evaluation failed")
		}
		report(res.Name, jobs[i].Scores, res.Result, priors, normalize)
	}
}

func loadKey(path string) (scorefile.Key, error) {
	r, _, err := scorefile.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return scorefile.ParseKey(r)
}

func loadScoreSet(key scorefile.Key, scorePath string) (*metrics.ScoreSet, error) {
	r, format, err := scorefile.Open(scorePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	scores, err := scorefile.ParseScores(r, format)
	if err != nil {
		return nil, err
	}
	return scorefile.Align(key, scores)
}

func report(name string, set metrics.ScoreSet, res *metrics.Result, priors []float64, normalize bool) {
	logSummary(name, "target", set.Target)
	logSummary(name, "nontarget", set.NonTarget)

	for i, p := range priors {
		log.Info().
			Str("scores", name).
			Float64("prior", p).
			Bool("normalized", normalize).
			Float64("min_dcf", res.MinDCF[i]).
			Float64("act_dcf", res.ActDCF[i]).
			Msg("detection cost")
	}
	log.Info().
		Str("scores", name).
		Float64("eer", res.EER).
		Float64("prbep", res.PRBEP).
		Msg("break-even")
}

func logSummary(name, population string, scores []float64) {
	sum, err := metrics.Summarize(scores)
	if err != nil {
		log.Warn().Err(err).Str("scores", name).Str("population", population).Msg("summary unavailable")
		return
	}
	log.Info().
		Str("scores", name).
		Str("population", population).
		Int("count", sum.Count).
		Float64("mean", sum.Mean).
		Float64("median", sum.Median).
		Float64("stddev", sum.StdDev).
		Float64("min", sum.Min).
		Float64("max", sum.Max).
		Msg("score population")
}
