package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	cal, err := Preset("baia mare")
	require.NoError(t, err)
	assert.Equal(t, "Baia Mare", cal.Location())

	cal, err = Preset("  Chiuzbaia ")
	require.NoError(t, err)
	assert.Equal(t, "Chiuzbaia", cal.Location())

	_, err = Preset("Cluj")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestBaiaMare_AcaciaFlow(t *testing.T) {
	cal := BaiaMare()

	f := cal.DailyFactors(130)
	assert.Contains(t, f.ActiveFlows, "Acacia (Salcam)")
	assert.InDelta(t, 1.4, f.EggRateModifier, 1e-9)
	assert.InDelta(t, 1.0, f.NectarAvailability, 1e-9)
}

func TestBaiaMare_SummerDearthAttrition(t *testing.T) {
	cal := BaiaMare()

	// Late July overlaps honeydew and dearth; attrition peaks.
	f := cal.DailyFactors(220)
	assert.InDelta(t, 2.7, f.AttritionModifier, 1e-9)
}

func TestChiuzbaia_LagsBaiaMare(t *testing.T) {
	lowland := BaiaMare()
	mountain := Chiuzbaia()

	// Mid May the lowland acacia flow is on but the mountain one is not
	// yet: bloom onset runs later at altitude.
	assert.Contains(t, lowland.DailyFactors(130).ActiveFlows, "Acacia (Salcam)")
	assert.NotContains(t, mountain.DailyFactors(130).ActiveFlows, "Acacia (Salcam)")
	assert.Contains(t, mountain.DailyFactors(140).ActiveFlows, "Acacia (Salcam)")
}

func TestPresets_CoverEveryDay(t *testing.T) {
	// Neither preset leaves the winter core uncovered, and both fall back
	// to the dearth baseline at most briefly in shoulder seasons.
	for _, cal := range []*Calendar{BaiaMare(), Chiuzbaia()} {
		gaps := 0
		for doy := 1; doy <= DaysPerYear; doy++ {
			if len(cal.ActiveFlows(doy)) == 0 {
				gaps++
			}
		}
		assert.Less(t, gaps, 40, "%s has %d uncovered days", cal.Location(), gaps)
	}
}
