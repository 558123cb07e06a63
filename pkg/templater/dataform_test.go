package templater

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/position"
)

func dataformConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Templater = NameDataform
	cfg.Templaters[NameDataform] = config.TemplaterConfig{
		ProjectID: "p",
		DatasetID: "d",
	}
	return cfg
}

func processDataform(t *testing.T, source string, cfg *config.Config) *Result {
	t.Helper()
	result, err := NewDataformTemplater().Process(context.Background(), Request{
		Path:   "model.sqlx",
		Source: source,
		Config: cfg,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Mapper)
	return result
}

func TestDataformTemplater_RefSubstitution(t *testing.T) {
	result := processDataform(t, "SELECT * FROM ${ref('t')}", dataformConfig())

	assert.Equal(t, "SELECT * FROM `p.d.t`", result.Mapper.Templated())
	assert.Empty(t, result.Warnings)

	// The prefix is literal and translates exactly.
	span, exact, err := result.Mapper.TranslateSpan(position.NewSpan(0, 14))
	require.NoError(t, err)
	assert.Equal(t, position.NewSpan(0, 14), span)
	assert.True(t, exact)

	// The substituted identifier maps back to the whole ref call.
	span, exact, err = result.Mapper.TranslateSpan(position.NewSpan(14, 21))
	require.NoError(t, err)
	assert.Equal(t, position.NewSpan(14, 25), span)
	assert.False(t, exact)
}

func TestDataformTemplater_RefWithDataset(t *testing.T) {
	result := processDataform(t, "SELECT 1 FROM ${ref('other', 'events')}", dataformConfig())
	assert.Equal(t, "SELECT 1 FROM `p.other.events`", result.Mapper.Templated())
}

func TestDataformTemplater_ConfigBlockKeepsLineNumbers(t *testing.T) {
	source := "config {\n  type: \"table\"\n}\nSELECT 1\n"
	result := processDataform(t, source, dataformConfig())

	// The block is replaced by its own newlines, so SELECT stays on the
	// same line as in the source.
	assert.Equal(t, "\n\n\nSELECT 1\n", result.Mapper.Templated())

	tplIdx := strings.Index(result.Mapper.Templated(), "SELECT")
	srcIdx := strings.Index(source, "SELECT")

	span, exact, err := result.Mapper.TranslateSpan(position.NewSpan(tplIdx, tplIdx+6))
	require.NoError(t, err)
	assert.True(t, exact)
	assert.Equal(t, position.NewSpan(srcIdx, srcIdx+6), span)

	srcPos, err := result.Mapper.SourcePosition(span.Start)
	require.NoError(t, err)
	tplPos, err := result.Mapper.TemplatedPosition(tplIdx)
	require.NoError(t, err)
	assert.Equal(t, srcPos.Line, tplPos.Line)
}

func TestDataformTemplater_JsBlockRemoved(t *testing.T) {
	source := "js { const x = 1; }\nSELECT 1"
	result := processDataform(t, source, dataformConfig())
	assert.Equal(t, "\nSELECT 1", result.Mapper.Templated())
}

func TestDataformTemplater_NoTemplating(t *testing.T) {
	source := "SELECT a, b FROM t\n"
	result := processDataform(t, source, dataformConfig())

	assert.Equal(t, source, result.Mapper.Templated())
	assert.True(t, result.Mapper.IsTemplated(), "a single literal segment is still a table")

	// With the single-literal table the whole file translates exactly.
	span, exact, err := result.Mapper.TranslateSpan(position.NewSpan(3, 9))
	require.NoError(t, err)
	assert.Equal(t, position.NewSpan(3, 9), span)
	assert.True(t, exact)
}

func TestDataformTemplater_MissingProjectWarns(t *testing.T) {
	cfg := config.NewConfig()
	result := processDataform(t, "SELECT * FROM ${ref('t')}", cfg)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "project_id")
}

func TestDataformTemplater_TableIsContiguous(t *testing.T) {
	source := "config { x }\nSELECT * FROM ${ref('a')} JOIN ${ref('b', 'c')}\n"
	result := processDataform(t, source, dataformConfig())

	m := result.Mapper
	require.True(t, m.IsTemplated())

	// Every sub-span of the templated text must translate without a
	// table error; contiguity violations would surface here.
	for start := 0; start <= len(m.Templated()); start += 3 {
		for end := start; end <= len(m.Templated()); end += 5 {
			_, _, err := m.TranslateSpan(position.NewSpan(start, end))
			require.NoError(t, err, "span [%d:%d)", start, end)
		}
	}
}

func TestDataformTemplater_MultibyteSource(t *testing.T) {
	// Multibyte characters before a ref call must not skew byte offsets.
	source := "-- naïve café\nSELECT * FROM ${ref('t')}"
	result := processDataform(t, source, dataformConfig())

	templated := result.Mapper.Templated()
	assert.True(t, strings.HasSuffix(templated, "`p.d.t`"))

	refStart := strings.Index(templated, "`p.d.t`")
	span, exact, err := result.Mapper.TranslateSpan(position.NewSpan(refStart, refStart+7))
	require.NoError(t, err)
	assert.False(t, exact)
	assert.Equal(t, "${ref('t')}", source[span.Start:span.End])
}
