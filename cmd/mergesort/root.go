package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	algorithm "adrianMachao/learning/mergesort/sort"
)

var defaultValues = []int32{12, 11, 13, 5, 6, 7}

var strategies = map[string]func([]int32) error{
	"recursive": func(a []int32) error {
		return algorithm.MergeSort(a, 0, len(a)-1)
	},
	"scratch": func(a []int32) error {
		algorithm.NewSorter[int32]().Sort(a)
		return nil
	},
	"bottomup": func(a []int32) error {
		algorithm.BottomUp(a)
		return nil
	},
}

func newRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("mergesort")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "mergesort [values...]",
		Short:        "Merge sort integers and print them before and after",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(v.GetString("log-level")); err != nil {
				return err
			}
			sortFn, ok := strategies[v.GetString("strategy")]
			if !ok {
				return errors.Errorf("unknown strategy %q", v.GetString("strategy"))
			}
			values, err := loadValues(args, v.GetString("values"))
			if err != nil {
				return err
			}
			log.Debugf("sorting %d values with %s", len(values), v.GetString("strategy"))
			return run(out, values, sortFn)
		},
	}
	cmd.Flags().String("strategy", "recursive", "recursive, scratch or bottomup")
	cmd.Flags().String("log-level", "WARNING", "CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG")
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func setupLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

// loadValues prefers command line arguments, then the separated list from
// the environment, then the built-in sequence.
func loadValues(args []string, env string) ([]int32, error) {
	if len(args) == 0 {
		args = strings.FieldsFunc(env, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	}
	if len(args) == 0 {
		return append([]int32(nil), defaultValues...), nil
	}

	values := make([]int32, 0, len(args))
	for _, s := range args {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "parse value %q", s)
		}
		values = append(values, int32(n))
	}
	return values, nil
}

func run(out io.Writer, values []int32, sortFn func([]int32) error) error {
	fmt.Fprintln(out, "Input Vec")
	printVec(out, values)

	if err := sortFn(values); err != nil {
		return errors.Wrap(err, "sort")
	}
	fmt.Fprintln(out, "=======================")
	fmt.Fprintln(out, "Sorted Vec is")
	printVec(out, values)
	return nil
}

func printVec(out io.Writer, values []int32) {
	for _, v := range values {
		fmt.Fprintf(out, "%d ", v)
	}
	fmt.Fprintln(out)
}
