package target

import (
	"bytes"
	"html/template"

	"TrackFit-Backend/pkg/nutrition"
)

const targetSummarySubject = "Your TrackFit daily targets"

var targetSummaryTemplate = template.Must(template.New("target_summary").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Your daily targets are ready</h2>
	<p>Goal: <strong>{{.Goal}}</strong>{{if .Weeks}}, about {{.Weeks}} weeks at your chosen pace{{end}}.</p>
	<table cellpadding="6">
		<tr><td>Calories</td><td><strong>{{.Targets.Calories}} kcal</strong></td></tr>
		<tr><td>Protein</td><td>{{.Targets.Protein}} g</td></tr>
		<tr><td>Carbs</td><td>{{.Targets.Carbs}} g</td></tr>
		<tr><td>Fat</td><td>{{.Targets.Fat}} g</td></tr>
	</table>
	<p style="color: #666;">Maintenance is {{printf "%.0f" .Maintenance}} kcal per day; your target adjusts it by {{printf "%.0f" .Adjustment}} kcal.</p>
</body>
</html>`))

func renderTargetSummary(goal nutrition.WeightGoal, calc nutrition.TargetCalculation, weeks int) (string, error) {
	var buf bytes.Buffer
	err := targetSummaryTemplate.Execute(&buf, struct {
		Goal        nutrition.WeightGoal
		Weeks       int
		Targets     nutrition.Targets
		Maintenance float64
		Adjustment  float64
	}{
		Goal:        goal,
		Weeks:       weeks,
		Targets:     calc.Targets,
		Maintenance: calc.MaintenanceCalories,
		Adjustment:  calc.DailyAdjustment,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
