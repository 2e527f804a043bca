package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/calckit/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":   FormatPercentage,
	"yesno": yesNo,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	var buf bytes.Buffer
	lf := reportLocale(results)

	title := results.Name
	if title == "" {
		title = "Calculation report"
	}

	// Chart series: end balance per year for each successful projection.
	type series struct {
		Name   string    `json:"name"`
		Values []float64 `json:"values"`
	}
	var chart []series
	for _, p := range results.Projections {
		if p.Result == nil {
			continue
		}
		s := series{Name: p.Name}
		for _, y := range p.Result.YearlyBreakdown {
			s.Values = append(s.Values, y.EndBalance)
		}
		chart = append(chart, s)
	}

	data := struct {
		*domain.BatchResults
		Title       string
		Generated   string
		Curr        func(float64) string
		Summary     Summary
		Assumptions []string
		Chart       []series
	}{
		BatchResults: results,
		Title:        title,
		Generated:    nowFunc().Format("2006-01-02 15:04"),
		Curr:         lf.Currency,
		Summary:      Summarize(results),
		Assumptions:  GenerateAssumptions(results),
		Chart:        chart,
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
