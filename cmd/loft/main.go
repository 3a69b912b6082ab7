package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"loft/internal/loft"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

var configuration string
var file string
var key string
var debug bool

var upload bool
var get bool
var remove bool

func init() {
	flag.BoolVar(&upload, "upload", false, "Uploads a file to the configured bucket")
	flag.BoolVar(&get, "get", false, "Retrieves an object and writes it to stdout")
	flag.BoolVar(&remove, "delete", false, "Deletes an object from the configured bucket")
	flag.StringVar(&configuration, "configuration", "/etc/loft.conf", "Specify an alternate configuration file")
	flag.StringVar(&file, "file", "", "The file to upload")
	flag.StringVar(&key, "key", "", "An object key")
	flag.BoolVar(&debug, "debug", false, "Sets log level to debug")
}

func main() {
	flag.Parse()
	logger()

	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := newContext()

	settings := loft.NewSettings()
	if err := settings.Load(configuration); err != nil {
		return err
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	backend, err := settings.NewBackend(log.Logger)
	if err != nil {
		return err
	}

	l := loft.New(backend, loft.NewTemplate(settings.Template))

	if upload && !(get || remove) {
		return runUpload(ctx, l)
	}

	if get && !(upload || remove) {
		return runGet(ctx, l)
	}

	if remove && !(upload || get) {
		return runDelete(ctx, l)
	}

	return fmt.Errorf("invalid argument combination")
}

func runUpload(ctx context.Context, l *loft.Loft) error {
	if file == "" {
		return fmt.Errorf("no file specified")
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read %s (%w)", file, err)
	}

	stored, err := l.Upload(ctx, loft.NewEntity(filepath.Base(file), data))
	if err != nil {
		return err
	}

	fmt.Println(stored)
	return nil
}

func runGet(ctx context.Context, l *loft.Loft) error {
	if key == "" {
		return fmt.Errorf("no object key specified")
	}

	data, err := l.Get(ctx, key)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}

func runDelete(ctx context.Context, l *loft.Loft) error {
	if key == "" {
		return fmt.Errorf("no object key specified")
	}
	return l.Delete(ctx, key)
}

func logger() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	loft.Logger = log.Logger

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals
		cancel()
	}()
	return ctx
}
