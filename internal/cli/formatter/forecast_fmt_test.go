package formatter

import (
	"strings"
	"testing"

	"github.com/mbrenner/velocity/internal/service"
	"github.com/mbrenner/velocity/internal/velocity"
	"github.com/stretchr/testify/assert"
)

func plain(t *testing.T) {
	t.Helper()
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(true) })
}

func TestFormatForecast(t *testing.T) {
	plain(t)

	fc := &service.Forecast{
		Ratios: velocity.RatioMap{"backend": 1.0},
		Projection: velocity.Projection{
			Points: map[string]int{"backend": 6, "frontend": 0},
			Total:  6,
		},
		SprintCount: 2,
	}

	out := FormatForecast(fc, map[string]int{"backend": 6, "frontend": 5})

	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "frontend")
	assert.Contains(t, out, "= 6")
}

func TestFormatForecast_SortsLabels(t *testing.T) {
	plain(t)

	fc := &service.Forecast{
		Ratios: velocity.RatioMap{"zeta": 1.0, "alpha": 1.0},
		Projection: velocity.Projection{
			Points: map[string]int{"zeta": 2, "alpha": 3},
			Total:  5,
		},
		SprintCount: 1,
	}

	out := FormatForecast(fc, map[string]int{"zeta": 2, "alpha": 3})
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "zeta"))
}
