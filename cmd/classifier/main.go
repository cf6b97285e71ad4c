package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	classifier "github.com/samuel/go-postclassifier"
	"github.com/samuel/go-postclassifier/internal/config"
	"github.com/samuel/go-postclassifier/internal/postcsv"
	"github.com/samuel/go-postclassifier/internal/report"
)

const usageLine = "Usage: classifier.exe TRAIN_FILE [TEST_FILE]"

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "classifier"
	app.Usage = "train a naive Bayes post classifier and test it"
	app.UsageText = "classifier [options] TRAIN_FILE [TEST_FILE]"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML config file",
		},
		cli.StringFlag{
			Name:  "store",
			Usage: "count store: memory, sqlite or sqlite3",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log debug messages to stderr",
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	out := c.App.Writer
	args := c.Args()
	if len(args) != 1 && len(args) != 2 {
		fmt.Fprintln(out, usageLine)
		return cli.NewExitError("", 1)
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if c.IsSet("store") {
		cfg.Store = c.String("store")
	}
	if c.Bool("debug") {
		cfg.LogLevel = log.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	log.SetLevel(cfg.Level())

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer closeStore()

	trainOnly := len(args) == 1
	p := report.NewPrinter(out, cfg.Precision)

	m, err := train(args[0], store, p, trainOnly)
	if err != nil {
		return exitError(out, args[0], err)
	}
	if trainOnly {
		if err := p.Summary(m); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}

	if err := test(args[1], m, p); err != nil {
		return exitError(out, args[1], err)
	}
	if err := p.Err(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func train(path string, store classifier.Store, p *report.Printer, verbose bool) (*classifier.Model, error) {
	src, err := postcsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	log.WithField("file", path).Debugln("training")

	t, err := classifier.NewTrainer(store, classifier.WhitespaceTokenizer)
	if err != nil {
		return nil, err
	}
	var echo func(classifier.Post) error
	if verbose {
		p.TrainingHeader()
		echo = func(post classifier.Post) error {
			p.TrainingPost(post)
			return nil
		}
	}
	n, err := t.Consume(src, echo)
	if err != nil {
		return nil, err
	}
	p.Trained(n)
	return t.Model()
}

func test(path string, m *classifier.Model, p *report.Printer) error {
	src, err := postcsv.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	log.WithField("file", path).Debugln("testing")

	p.TestHeader()
	rep, err := classifier.Evaluate(m, src, func(r classifier.Result, sofar classifier.Report) error {
		p.Result(r)
		log.WithFields(log.Fields{
			"correct":  sofar.Correct,
			"total":    sofar.Total,
			"accuracy": sofar.Accuracy(),
		}).Debugln("predicted")
		return nil
	})
	if err != nil {
		return err
	}
	p.Performance(rep)
	return nil
}

func exitError(out io.Writer, path string, err error) error {
	var sue *classifier.SourceUnavailableError
	if errors.As(err, &sue) {
		log.WithField("file", sue.Source).Debugln(sue.Err)
		fmt.Fprintf(out, "Error opening file: %s\n", path)
		return cli.NewExitError("", 1)
	}
	return cli.NewExitError(path+": "+err.Error(), 1)
}
