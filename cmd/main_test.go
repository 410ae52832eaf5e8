package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

const clubRoster = `
title: Club night
entrants:
  - {name: Jean, rank: 1000, category: 10}
  - {name: mary, rank: 1100, category: 9}
  - {name: peter, rank: 1200, category: 11}
`

func clearEnv() {
	for _, k := range []string{
		"CHAMPIONS_CONFIG",
		"CHAMPIONS_LOG_LEVEL",
		"CHAMPIONS_INPUT",
		"CHAMPIONS_FORMAT",
		"CHAMPIONS_METRICS_TEXTFILE",
	} {
		_ = os.Unsetenv(k)
	}
}

func TestRun(t *testing.T) {
	convey.Convey("Given the champions command", t, func() {
		clearEnv()
		defer clearEnv()
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "club.yaml")
		convey.So(os.WriteFile(path, []byte(clubRoster), 0o600), convey.ShouldBeNil)
		var stdout, stderr bytes.Buffer

		convey.Convey("When run with a roster path argument", func() {
			code := run(ctx, []string{path}, &stdout, &stderr)

			convey.Convey("Then the champions table is printed", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout.String(), convey.ShouldEqual, "Club night\n\n"+
					"#  NAME   RANK  CATEGORY\n"+
					"1  mary   1100  9\n"+
					"2  peter  1200  11\n")
				convey.So(stderr.String(), convey.ShouldContainSubstring, "selection finished")
			})
		})

		convey.Convey("When run with -format json and the input flag", func() {
			code := run(ctx, []string{"-format", "json", "-input", path}, &stdout, &stderr)

			convey.Convey("Then JSON is printed", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout.String(), convey.ShouldContainSubstring, `"name": "peter"`)
				convey.So(stdout.String(), convey.ShouldNotContainSubstring, `"Jean"`)
			})
		})

		convey.Convey("When the format comes from the environment", func() {
			_ = os.Setenv("CHAMPIONS_FORMAT", "yaml")
			code := run(ctx, []string{path}, &stdout, &stderr)

			convey.Convey("Then YAML is printed", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout.String(), convey.ShouldContainSubstring, "- position: 1")
			})
		})

		convey.Convey("When a metrics textfile is requested", func() {
			prom := filepath.Join(dir, "champions.prom")
			code := run(ctx, []string{"-metrics-textfile", prom, path}, &stdout, &stderr)

			convey.Convey("Then the metrics are exported", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				data, err := os.ReadFile(prom)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, `champions_selector_runs_total{format="text"} 1`)
				convey.So(string(data), convey.ShouldContainSubstring, `champions_selector_champions_total{format="text"} 2`)
			})
		})

		convey.Convey("When the roster does not exist", func() {
			code := run(ctx, []string{filepath.Join(dir, "missing.yaml")}, &stdout, &stderr)

			convey.Convey("Then it fails without output", func() {
				convey.So(code, convey.ShouldEqual, exitError)
				convey.So(stdout.Len(), convey.ShouldEqual, 0)
				convey.So(stderr.String(), convey.ShouldContainSubstring, "failed to load roster")
			})
		})

		convey.Convey("When the format is unknown", func() {
			code := run(ctx, []string{"-format", "csv", path}, &stdout, &stderr)

			convey.Convey("Then it is a usage error", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
				convey.So(stderr.String(), convey.ShouldContainSubstring, "invalid configuration")
			})
		})

		convey.Convey("When an unknown flag is passed", func() {
			code := run(ctx, []string{"-bogus"}, &stdout, &stderr)

			convey.Convey("Then it is a usage error", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
			})
		})

		convey.Convey("When help is requested", func() {
			code := run(ctx, []string{"-h"}, &stdout, &stderr)

			convey.Convey("Then usage is printed and the exit is clean", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stderr.String(), convey.ShouldContainSubstring, "-metrics-textfile")
			})
		})

		convey.Convey("When the config file is broken", func() {
			bad := filepath.Join(dir, "bad.yaml")
			convey.So(os.WriteFile(bad, []byte("format: [\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("CHAMPIONS_CONFIG", bad)
			code := run(ctx, []string{path}, &stdout, &stderr)

			convey.Convey("Then it is a usage error", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
				convey.So(stderr.String(), convey.ShouldContainSubstring, "failed to load config")
				convey.So(stdout.Len(), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the environment names an unknown format", func() {
			_ = os.Setenv("CHAMPIONS_FORMAT", "csv")

			convey.Convey("And -format overrides it", func() {
				code := run(ctx, []string{"-format", "json", path}, &stdout, &stderr)

				convey.Convey("Then the flag wins and the run succeeds", func() {
					convey.So(code, convey.ShouldEqual, exitOK)
					convey.So(stdout.String(), convey.ShouldContainSubstring, `"name": "mary"`)
				})
			})

			convey.Convey("And nothing overrides it", func() {
				code := run(ctx, []string{path}, &stdout, &stderr)

				convey.Convey("Then it is a usage error", func() {
					convey.So(code, convey.ShouldEqual, exitUsage)
					convey.So(stderr.String(), convey.ShouldContainSubstring, "invalid configuration")
				})
			})
		})
	})
}
