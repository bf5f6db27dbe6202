package cli

import (
	"bytes"
	"testing"

	"github.com/mbrenner/velocity/internal/cli/formatter"
	"github.com/mbrenner/velocity/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	formatter.SetColorEnabled(false)
	t.Cleanup(func() { formatter.SetColorEnabled(true) })

	app := &App{
		Config:        config.Config{DBPath: ":memory:", WeekCount: 4},
		IsInteractive: func() bool { return false },
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCreateGetDelete_EndToEnd(t *testing.T) {
	app := newTestApp(t)

	out, err := run(t, app, "create", "19", "-g", "backend 6 8")
	require.NoError(t, err)
	assert.Contains(t, out, "week 19")

	_, err = run(t, app, "create", "18", "-g", "backend 6 4")
	require.NoError(t, err)

	// Ratios 8/6 and 4/6 average to 1.0; 6 future days project 6 points.
	out, err = run(t, app, "get", "19", "-w", "2", "-g", "backend 6")
	require.NoError(t, err)
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "= 6")

	_, err = run(t, app, "delete", "19")
	require.NoError(t, err)

	// -w omitted: the config default window (4 weeks) still covers week 18.
	out, err = run(t, app, "get", "19", "-g", "backend 6")
	require.NoError(t, err)
	assert.Contains(t, out, "= 4", "only week 18 remains after the delete")
}

func TestCreate_DuplicateWeekFails(t *testing.T) {
	app := newTestApp(t)

	_, err := run(t, app, "create", "19", "-g", "backend 6 8")
	require.NoError(t, err)

	_, err = run(t, app, "create", "19", "-g", "backend 6 9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already recorded")
}

func TestCreate_NonInteractiveWithoutGroups(t *testing.T) {
	app := newTestApp(t)

	// No -g and no terminal: records an empty sprint.
	out, err := run(t, app, "create", "21")
	require.NoError(t, err)
	assert.Contains(t, out, "0 group(s)")
}

func TestGet_NoSprintsInRange(t *testing.T) {
	app := newTestApp(t)

	_, err := run(t, app, "get", "19", "-w", "2", "-g", "backend 6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sprints recorded")
}

func TestDelete_MissingWeekSucceeds(t *testing.T) {
	app := newTestApp(t)

	_, err := run(t, app, "delete", "40")
	assert.NoError(t, err)
}

func TestList_ShowsRecordedSprints(t *testing.T) {
	app := newTestApp(t)

	_, err := run(t, app, "create", "19", "-g", "backend 6 8", "-g", "qa 4 2")
	require.NoError(t, err)

	out, err := run(t, app, "list", "19", "-w", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "qa")
	assert.Contains(t, out, "8")
}
