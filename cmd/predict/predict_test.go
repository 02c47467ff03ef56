package predict_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fjacquet/card-spend/cmd/predict"
	"fjacquet/card-spend/cmd/root"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Date,Category,Transaction Amount
01-01-2024,Groceries,100
02-01-2024,Groceries,200
02-01-2024,Travel,15.25
01-01-2024,Travel,4.75
03-02-2024,Travel,40
05-03-2024,,99
`

var registerOnce sync.Once

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	registerOnce.Do(func() {
		root.Init()
		root.Cmd.AddCommand(predict.Cmd)
	})
	resetFlags(root.Cmd.PersistentFlags())
	resetFlags(predict.Cmd.Flags())

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(io.Discard)
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestPredictCommand_Metadata(t *testing.T) {
	assert.Equal(t, "predict", predict.Cmd.Use)
	assert.Contains(t, predict.Cmd.Short, "Predict")
	assert.NotNil(t, predict.Cmd.Flags().Lookup("code"))
}

func TestPredictCommand_Mean(t *testing.T) {
	out, err := execute(t, "predict", "--code", "0", "--input", writeCSV(t))
	require.NoError(t, err)
	assert.Equal(t, "Predicted future spendings for category 0: 150.00\n", out)
}

func TestPredictCommand_NoData(t *testing.T) {
	out, err := execute(t, "predict", "--code", "5", "--input", writeCSV(t))
	require.NoError(t, err)
	assert.Equal(t, "Predicted future spendings for category 5: No data available for this category\n", out)
}

func TestPredictCommand_JSON(t *testing.T) {
	out, err := execute(t, "predict", "--code", "1", "--input", writeCSV(t), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"available": true`)
	assert.Contains(t, out, `"samples": 3`)
}

// resetFlags restores defaults so required-flag checks see a fresh command.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
