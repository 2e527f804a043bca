package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "scenario_*.yaml")
	require.NoError(t, err)
	_, err = tmpfile.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "name: \"Family plan\"\n" +
		"locale: de-DE\n" +
		"currency: EUR\n" +
		"projections:\n" +
		"  - name: \"Pension\"\n" +
		"    principal: 10000\n" +
		"    monthly_contribution: 500\n" +
		"    annual_rate_percent: 7\n" +
		"    compounding_periods_per_year: 12\n" +
		"    years: 10\n" +
		"    inflation_rate_percent: 2.5\n" +
		"target_prices:\n" +
		"  - name: \"Exit\"\n" +
		"    buy_price: 50\n" +
		"    shares: 100\n" +
		"    desired_net_profit: 1000\n" +
		"    brokerage_fee_rate_percent: 0.5\n" +
		"    tax_rate_percent: 15\n" +
		"goals:\n" +
		"  - name: \"Deposit\"\n" +
		"    principal: 5000\n" +
		"    monthly_contribution: 400\n" +
		"    annual_rate_percent: 4\n" +
		"    compounding_periods_per_year: 12\n" +
		"    years: 5\n" +
		"    target_amount: 40000\n"

	parser := NewInputParser()
	file, err := parser.LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "Family plan", file.Name)
	assert.Equal(t, "de-DE", file.Locale)
	require.Len(t, file.Projections, 1)
	p := file.Projections[0]
	assert.Equal(t, "Pension", p.Name)
	assert.Equal(t, 500.0, p.PeriodicContribution)
	assert.Equal(t, 12, p.CompoundingPeriodsPerYear)
	assert.Equal(t, 2.5, p.InflationRatePercent)

	require.Len(t, file.TargetPrices, 1)
	assert.Equal(t, 1000.0, file.TargetPrices[0].DesiredNetProfit)

	require.Len(t, file.Goals, 1)
	assert.Equal(t, 40000.0, file.Goals[0].TargetAmount)
	assert.Equal(t, 400.0, file.Goals[0].PeriodicContribution)
	assert.Empty(t, file.Trades)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	file, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nonexistent_file.yaml"))

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	file, err := parser.LoadFromFile(writeTemp(t, "projections: [unclosed\n"))

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty file",
			yaml:    "name: nothing\n",
			wantErr: "no calculations provided",
		},
		{
			name:    "missing name",
			yaml:    "trades:\n  - buy_price: 1\n",
			wantErr: "trades[0]: name is required",
		},
		{
			name:    "duplicate name",
			yaml:    "projections:\n  - name: a\n  - name: b\n  - name: a\n",
			wantErr: `projections[2]: duplicate name "a"`,
		},
		{
			name:    "bad currency",
			yaml:    "currency: XYZ1\nprojections:\n  - name: a\n",
			wantErr: "invalid currency",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfiguration_NumericRangesDeferred(t *testing.T) {
	file, err := NewInputParser().Parse([]byte("projections:\n  - name: broken\n    years: -4\n"))
	require.NoError(t, err)
	assert.Equal(t, -4.0, file.Projections[0].Years)
}

func TestCreateExampleScenarioFile(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleScenarioFile()
	require.NoError(t, parser.ValidateConfiguration(example))

	data, err := MarshalScenarioFile(example)
	require.NoError(t, err)

	back, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, example, back)
}
