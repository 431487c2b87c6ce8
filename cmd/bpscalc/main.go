package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/openbps/bpscalc/internal/calculation"
	"github.com/openbps/bpscalc/internal/compare"
	"github.com/openbps/bpscalc/internal/config"
	"github.com/openbps/bpscalc/internal/domain"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...interface{}) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...interface{})  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...interface{})  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...interface{}) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "bpscalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "bpscalc",
	Short: "Building performance standard penalty calculator",
	Long:  "Computes per-building compliance penalty exposure and recommends the superior compliance path",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Compare compliance paths for every building in a portfolio file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		pretty, _ := cmd.Flags().GetBool("pretty")
		verbose, _ := cmd.Flags().GetBool("verbose")

		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine, err := calculation.NewEngine(input.Config, calculation.NewMAIResolver(input.MAIDesignations))
		if err != nil {
			return err
		}
		if verbose {
			engine.SetLogger(simpleCLILogger{})
		}

		comparator := compare.NewPathComparator(engine)
		result := comparator.ComparePortfolio(input.Buildings)

		switch format {
		case "json":
			formatter := &compare.JSONFormatter{Pretty: pretty}
			out, err := formatter.Format(result)
			if err != nil {
				return fmt.Errorf("formatting results: %w", err)
			}
			fmt.Fprintln(os.Stdout, out)
		default:
			formatter := &compare.TableFormatter{}
			fmt.Fprint(os.Stdout, formatter.Format(result))
		}
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [input-file]",
	Short: "Print the penalty schedule for one building under one path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buildingID, _ := cmd.Flags().GetString("building")
		pathName, _ := cmd.Flags().GetString("path")
		targetYear, _ := cmd.Flags().GetInt("target-year")
		late, _ := cmd.Flags().GetBool("late")
		nominal, _ := cmd.Flags().GetBool("nominal")

		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		var building *domain.BuildingRecord
		for i := range input.Buildings {
			if input.Buildings[i].BuildingID == buildingID {
				building = &input.Buildings[i]
				break
			}
		}
		if building == nil {
			return fmt.Errorf("building %s not found in %s", buildingID, args[0])
		}

		path, err := resolvePath(pathName, targetYear, late)
		if err != nil {
			return err
		}

		engine, err := calculation.NewEngine(input.Config, calculation.NewMAIResolver(input.MAIDesignations))
		if err != nil {
			return err
		}

		var schedule *domain.PenaltySchedule
		if nominal {
			schedule, err = engine.BuildSchedule(building, path)
		} else {
			schedule, err = engine.DiscountedSchedule(building, path)
		}
		if err != nil {
			return err
		}

		formatter := &compare.TableFormatter{}
		fmt.Fprint(os.Stdout, formatter.FormatSchedule(schedule))
		return nil
	},
}

func resolvePath(name string, targetYear int, late bool) (domain.CompliancePath, error) {
	switch domain.PathKind(name) {
	case domain.PathStandard:
		return domain.StandardPath(), nil
	case domain.PathAlternate:
		return domain.AlternatePath(), nil
	case domain.PathExtension:
		if targetYear == 0 {
			return domain.CompliancePath{}, fmt.Errorf("extension path requires --target-year")
		}
		return domain.ExtensionPath(targetYear, late), nil
	case domain.PathNeverBenchmarked:
		return domain.NeverBenchmarkedPath(), nil
	default:
		return domain.CompliancePath{}, fmt.Errorf("unknown path %q", name)
	}
}

func init() {
	analyzeCmd.Flags().String("format", "table", "Output format: table or json")
	analyzeCmd.Flags().Bool("pretty", false, "Indent JSON output")
	analyzeCmd.Flags().Bool("verbose", false, "Log per-building evaluation details")

	scheduleCmd.Flags().String("building", "", "Building ID to analyze")
	scheduleCmd.Flags().String("path", "standard", "Compliance path: standard, alternate, extension or never_benchmarked")
	scheduleCmd.Flags().Int("target-year", 0, "Extension target year (extension path only)")
	scheduleCmd.Flags().Bool("late", false, "Apply the late-extension rate add-on")
	scheduleCmd.Flags().Bool("nominal", false, "Skip NPV discounting")
	_ = scheduleCmd.MarkFlagRequired("building")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
