// dircat resolves registry-named storage locations and lists their entries.
//
// Usage:
//
//	dircat [flags] [NAME ...]
//
// Flags:
//
//	--registry SPEC       Registry backend (default: env:.dircat)
//	                      SPEC formats:
//	                        sqlite:FILE       SQLite database
//	                        postgres:DSN      PostgreSQL (pgx driver)
//	                        env:FILE          dotenv file of NAME=/path lines
//	--register NAME=PATH  Provision a registry entry before running (repeatable,
//	                      database backends only)
//	--path P              List the raw filesystem path P instead of a name
//	--listen ADDR         Serve HTTP on ADDR instead of listing once
//	--debug               Enable debug logging to stderr
//
// Example:
//
//	dircat --registry sqlite:locations.db --register DATA_DIR=/srv/data DATA_DIR
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	dircat "github.com/harolddawson/dircat"
	"github.com/harolddawson/dircat/registry"
	"github.com/harolddawson/dircat/server"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// registerFlags collects repeatable --register flags.
type registerFlags []string

func (r *registerFlags) String() string { return strings.Join(*r, ", ") }
func (r *registerFlags) Set(value string) error {
	*r = append(*r, value)
	return nil
}

func main() {
	var regFlags registerFlags
	regSpec := flag.String("registry", "env:.dircat", "Registry backend SPEC")
	rawPath := flag.String("path", "", "List a raw filesystem path instead of a name")
	listen := flag.String("listen", "", "Serve HTTP on this address")
	debug := flag.Bool("debug", false, "Enable debug logging to stderr")
	flag.Var(&regFlags, "register", "Provision a registry entry NAME=PATH (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Process-level settings (e.g. PGPASSWORD for postgres registries) may
	// live in a local .env; absence is fine.
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg, closeReg, err := openRegistry(ctx, *regSpec, regFlags)
	if err != nil {
		slog.Error("failed to open registry", "spec", *regSpec, "error", err)
		os.Exit(1)
	}
	defer closeReg()

	cat := dircat.New(reg)

	if *listen != "" {
		serve(ctx, cat, *listen)
		return
	}

	if *rawPath == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "nothing to list: pass NAME arguments or --path (see --help)")
		os.Exit(2)
	}

	exit := 0
	if *rawPath != "" {
		if err := listOne(ctx, cat, "", *rawPath); err != nil {
			exit = 1
		}
	}
	for _, name := range flag.Args() {
		if err := listOne(ctx, cat, name, ""); err != nil {
			exit = 1
		}
	}
	os.Exit(exit)
}

// openRegistry builds the registry described by spec and applies any
// --register provisioning entries.
func openRegistry(ctx context.Context, spec string, entries []string) (dircat.Registry, func(), error) {
	kind, arg, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, nil, fmt.Errorf("malformed registry spec %q (want KIND:ARG)", spec)
	}

	switch kind {
	case "sqlite", "postgres":
		driver := kind
		if kind == "postgres" {
			driver = "pgx"
		}
		db, err := registry.Open(driver, arg)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range entries {
			name, path, ok := strings.Cut(e, "=")
			if !ok {
				db.Close()
				return nil, nil, fmt.Errorf("malformed --register %q (want NAME=PATH)", e)
			}
			if err := db.Put(ctx, name, path); err != nil {
				db.Close()
				return nil, nil, err
			}
			slog.Info("registered location", "name", name, "path", path)
		}
		return db, func() { db.Close() }, nil

	case "env":
		if len(entries) > 0 {
			return nil, nil, fmt.Errorf("--register requires a database registry, not %q", spec)
		}
		reg, err := registry.LoadEnvFile(arg)
		if err != nil {
			return nil, nil, err
		}
		return reg, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown registry kind %q", kind)
}

// listOne lists a single name or raw path and prints the records.
func listOne(ctx context.Context, cat *dircat.Catalog, name, path string) error {
	var (
		records []dircat.Record
		err     error
		what    string
	)
	if name != "" {
		what = name
		records, err = cat.ListByName(ctx, name)
	} else {
		what = path
		records, err = cat.ListByPath(ctx, path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dircat: %s: %v\n", what, err)
		return err
	}
	for _, rec := range records {
		fmt.Println(rec)
	}
	return nil
}

// serve runs the HTTP adapter until the context is cancelled.
func serve(ctx context.Context, cat *dircat.Catalog, addr string) {
	srv := &http.Server{Addr: addr, Handler: server.New(cat)}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	slog.Info("dircat listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
