package pipeline

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	fittracker "github.com/lucasjlepore/fit-tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tormoder/fit"
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/reader"
)

func TestRunWritesBundle(t *testing.T) {
	tmp := t.TempDir()
	swim := writeTestFIT(t, tmp, "swim.fit", fit.SportSwimming, 720, 2500, 40)
	run := writeTestFIT(t, tmp, "run.fit", fit.SportRunning, 15000, 0, 0)
	ride := writeTestFIT(t, tmp, "ride.fit", fit.SportCycling, 0, 0, 0)

	outDir := filepath.Join(tmp, "out")
	res, err := Run(Options{
		FitPaths: []string{swim, ride, run},
		OutDir:   outDir,
		WeightKG: 80,
		Format:   "csv",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowCount)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "ride.fit")

	f, err := os.Open(res.SummariesPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, summaryCSVHeader, rows[0])
	assert.Equal(t, swim, rows[1][0])
	assert.Equal(t, "SWM", rows[1][1])
	assert.Equal(t, "336.000000", rows[1][6])
	assert.Equal(t,
		"Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Average speed: 1.000 km/h; Calories burned: 336.000.",
		rows[1][7],
	)
	assert.Equal(t, "Running", rows[2][2])

	data, err := os.ReadFile(res.ManifestPath)
	require.NoError(t, err)
	var manifest Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, FormatVersion, manifest.FormatVersion)
	assert.Equal(t, res.RunID, manifest.RunID)
	assert.Equal(t, "summaries.csv", manifest.SummariesPath)
	assert.Equal(t, []string{swim, run}, manifest.Sources)
	_, err = uuid.Parse(manifest.RunID)
	assert.NoError(t, err)
}

func TestRunRequiresInputs(t *testing.T) {
	_, err := Run(Options{OutDir: t.TempDir()})
	assert.Error(t, err)

	_, err = Run(Options{FitPaths: []string{"a.fit"}})
	assert.Error(t, err)
}

func TestRunOnlyUnsupportedSports(t *testing.T) {
	tmp := t.TempDir()
	ride := writeTestFIT(t, tmp, "ride.fit", fit.SportCycling, 0, 0, 0)

	_, err := Run(Options{FitPaths: []string{ride}, OutDir: filepath.Join(tmp, "out"), WeightKG: 70})
	assert.Error(t, err)
}

func TestWriteJSONRussian(t *testing.T) {
	msg := fittracker.NewRunning(15000, 1, 75).ShowTrainingInfo()
	summaries := []Summary{NewSummary("sample", fittracker.CodeRunning, msg, fittracker.Russian)}

	res, err := Write(t.TempDir(), summaries, WriteOptions{Format: "JSON", Lang: "ru"})
	require.NoError(t, err)
	assert.Equal(t, "summaries.json", filepath.Base(res.SummariesPath))

	data, err := os.ReadFile(res.SummariesPath)
	require.NoError(t, err)
	var got []Summary
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, summaries[0], got[0])
	assert.Contains(t, got[0].Message, "Тип тренировки: Running;")
}

func TestWriteParquet(t *testing.T) {
	var summaries []Summary
	for _, p := range fittracker.SamplePackages() {
		tr, err := fittracker.ReadPackage(p.Code, p.Data)
		require.NoError(t, err)
		summaries = append(summaries, NewSummary("sample", p.Code, tr.ShowTrainingInfo(), fittracker.English))
	}

	res, err := Write(t.TempDir(), summaries, WriteOptions{Format: "parquet"})
	require.NoError(t, err)

	data, err := os.ReadFile(res.SummariesPath)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("PAR1")))

	fr := parquetbuffer.NewBufferFileFromBytes(data)
	pr, err := reader.NewParquetReader(fr, new(summaryParquetRow), 1)
	require.NoError(t, err)
	defer pr.ReadStop()

	require.Equal(t, int64(3), pr.GetNumRows())
	rows := make([]summaryParquetRow, 3)
	require.NoError(t, pr.Read(&rows))
	assert.Equal(t, "SWM", rows[0].Code)
	assert.Equal(t, "SportsWalking", rows[2].TrainingType)
	assert.InDelta(t, summaries[1].Calories, rows[1].Calories, 1e-12)
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	_, err := Write(t.TempDir(), nil, WriteOptions{Format: "xml"})
	assert.Error(t, err)
}

func TestWriteRefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	_, err := Write(dir, nil, WriteOptions{})
	assert.Error(t, err)

	_, err = Write(dir, nil, WriteOptions{Overwrite: true})
	assert.NoError(t, err)
}

func writeTestFIT(t *testing.T, dir, name string, sport fit.Sport, cycles uint32, poolLength, lengths uint16) string {
	t.Helper()

	file, err := fit.NewFile(fit.FileTypeActivity, fit.NewHeader(fit.V20, true))
	require.NoError(t, err)
	activity, err := file.Activity()
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
	session := fit.NewSessionMsg()
	session.Timestamp = start.Add(time.Hour)
	session.StartTime = start
	session.Sport = sport
	session.TotalTimerTime = 3600 * 1000
	session.TotalCycles = cycles
	if poolLength > 0 {
		session.PoolLength = poolLength
		session.NumActiveLengths = lengths
	}
	activity.Sessions = append(activity.Sessions, session)

	var buf bytes.Buffer
	require.NoError(t, fit.Encode(&buf, file, binary.LittleEndian))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}
