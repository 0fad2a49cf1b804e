package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatchErrorIsolation(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"16-6-25\t16:38:25\tICE_L\tSON Sep26 D-Fly\tB\t1\t-0.025",
		"this line is garbage",
		"17-6-25\t09:12:00\tICE_L\tSON Sep26 D-Fly\tS\t1\t-0.020",
	}, "\n")

	res := ParseBatch(input)

	require.Len(t, res.Trades, 2)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 2, res.Errors[0].Line)
	assert.Contains(t, res.Errors[0].Content, "garbage")
	assert.NotEmpty(t, res.Errors[0].Reason)
}

func TestParseBatchSortsByTimestamp(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"17-6-25\t09:12:00\tICE_L\tSON Sep26 D-Fly\tS\t1\t-0.020",
		"16-6-25\t16:38:25\tICE_L\tSON Sep26 D-Fly\tB\t1\t-0.025",
	}, "\n")

	res := ParseBatch(input)

	require.Len(t, res.Trades, 2)
	assert.True(t, res.Trades[0].Timestamp.Before(res.Trades[1].Timestamp))
}

func TestParseBatchSkipsBlankLines(t *testing.T) {
	t.Parallel()

	input := "\n16-6-25\t16:38:25\tICE_L\tSON Sep26 D-Fly\tB\t1\t-0.025\n\n"
	res := ParseBatch(input)

	assert.Len(t, res.Trades, 1)
	assert.Empty(t, res.Errors)
}

func TestParseBatchTruncatesErrorContent(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 120)
	res := ParseBatch(long)

	require.Len(t, res.Errors, 1)
	assert.LessOrEqual(t, len(res.Errors[0].Content), 50)
}

func TestParseBatchEmptyInput(t *testing.T) {
	t.Parallel()

	res := ParseBatch("")
	assert.Empty(t, res.Trades)
	assert.Empty(t, res.Errors)
}
