package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"TrackFit-Backend/cmd/config"
	migration "TrackFit-Backend/cmd/database/migrate"
	"TrackFit-Backend/cmd/database/seed"
	"TrackFit-Backend/internal/utils"
	"TrackFit-Backend/pkg/food"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "importer",
	Short:         "importer loads the reference food database from CSV files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var foodsCmd = &cobra.Command{
	Use:   "foods <food.csv>",
	Short: "Import foods (name_he, name_en, calories, protein, fat, carbs, image_url)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], "Foods", seed.ImportFoods)
	},
}

var unitsCmd = &cobra.Command{
	Use:   "units <food_measurement_units.csv>",
	Short: "Import measurement units for foods that are already imported",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], "Units", seed.ImportMeasurementUnits)
	},
}

type importFunc func(ctx context.Context, repo food.FoodRepository, r io.Reader) (seed.Result, error)

func runImport(cmd *cobra.Command, path string, label string, fn importFunc) error {
	utils.LoadConfig()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if err := migration.Migrate(db); err != nil {
		return err
	}

	res, err := fn(cmd.Context(), food.NewFoodRepository(db), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", label, res)
	return nil
}

func init() {
	rootCmd.AddCommand(foodsCmd, unitsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
