// Location presets for the Maramures region, derived from regional honey
// flow research. Tables are package-level constants in effect: they are
// copied into a fresh Calendar on every call and never mutated.
package calendar

import (
	"fmt"
	"strings"
)

// baiaMarePeriods covers the full annual cycle for Baia Mare (220 m).
// Attrition climbs through summer as sustained foraging wears colonies down
// and peaks during the August dearth (heat plus robbing pressure).
var baiaMarePeriods = []FlowPeriod{
	{Name: "Winter Dormancy", StartDay: 1, Duration: 50,
		NectarIntensity: 0.0, PollenIntensity: 0.0, EggRateModifier: 0.05, AttritionModifier: 0.10},
	{Name: "Hazelnut/Alder", StartDay: 51, Duration: 10,
		NectarIntensity: 0.1, PollenIntensity: 0.7, EggRateModifier: 0.6, AttritionModifier: 0.15},
	{Name: "Willow (Salcia)", StartDay: 79, Duration: 15,
		NectarIntensity: 0.4, PollenIntensity: 0.8, EggRateModifier: 0.8, AttritionModifier: 0.18},
	{Name: "Early Spring Buildup", StartDay: 94, Duration: 6,
		NectarIntensity: 0.3, PollenIntensity: 0.6, EggRateModifier: 1.0, AttritionModifier: 0.20},
	{Name: "Plum (Prun)", StartDay: 100, Duration: 10,
		NectarIntensity: 0.7, PollenIntensity: 0.9, EggRateModifier: 1.3, AttritionModifier: 0.20},
	{Name: "Late Fruit Trees", StartDay: 110, Duration: 15,
		NectarIntensity: 0.6, PollenIntensity: 0.8, EggRateModifier: 1.3, AttritionModifier: 0.22},
	{Name: "Acacia (Salcam)", StartDay: 125, Duration: 15,
		NectarIntensity: 1.0, PollenIntensity: 0.5, EggRateModifier: 1.4, AttritionModifier: 0.25},
	{Name: "May Gap", StartDay: 140, Duration: 12,
		NectarIntensity: 0.2, PollenIntensity: 0.4, EggRateModifier: 0.8, AttritionModifier: 0.30},
	{Name: "Raspberry (Zmeur)", StartDay: 152, Duration: 30,
		NectarIntensity: 0.8, PollenIntensity: 0.7, EggRateModifier: 1.2, AttritionModifier: 1.2},
	{Name: "Linden (Tei) Large-leaved", StartDay: 161, Duration: 10,
		NectarIntensity: 0.95, PollenIntensity: 0.6, EggRateModifier: 1.1, AttritionModifier: 1.5},
	{Name: "Linden Small/Silver", StartDay: 171, Duration: 15,
		NectarIntensity: 0.95, PollenIntensity: 0.6, EggRateModifier: 1.0, AttritionModifier: 1.8},
	{Name: "Meadow Flora", StartDay: 152, Duration: 90,
		NectarIntensity: 0.5, PollenIntensity: 0.7, EggRateModifier: 1.0, AttritionModifier: 1.5},
	{Name: "Fireweed (High Alt)", StartDay: 166, Duration: 75,
		NectarIntensity: 0.6, PollenIntensity: 0.5, EggRateModifier: 1.0, AttritionModifier: 2.0},
	{Name: "Honeydew (Mana)", StartDay: 196, Duration: 45,
		NectarIntensity: 0.7, PollenIntensity: 0.3, EggRateModifier: 0.9, AttritionModifier: 2.3},
	{Name: "Summer Dearth", StartDay: 213, Duration: 20,
		NectarIntensity: 0.3, PollenIntensity: 0.3, EggRateModifier: 0.8, AttritionModifier: 2.7},
	{Name: "Goldenrod", StartDay: 233, Duration: 20,
		NectarIntensity: 0.4, PollenIntensity: 0.5, EggRateModifier: 0.7, AttritionModifier: 2.0},
	{Name: "Fall Aster/Ivy", StartDay: 244, Duration: 30,
		NectarIntensity: 0.3, PollenIntensity: 0.5, EggRateModifier: 0.4, AttritionModifier: 1.5},
	{Name: "Late Fall", StartDay: 274, Duration: 31,
		NectarIntensity: 0.1, PollenIntensity: 0.2, EggRateModifier: 0.2, AttritionModifier: 1.0},
	{Name: "Pre-Winter", StartDay: 305, Duration: 30,
		NectarIntensity: 0.0, PollenIntensity: 0.0, EggRateModifier: 0.05, AttritionModifier: 0.25},
	{Name: "Winter Cluster", StartDay: 335, Duration: 31,
		NectarIntensity: 0.0, PollenIntensity: 0.0, EggRateModifier: 0.0, AttritionModifier: 0.10},
}

// chiuzbaiaPeriods covers Chiuzbaia (350-800 m, ~575 m average). Blooms run
// roughly 10-15 days behind Baia Mare; raspberry, fireweed and honeydew are
// stronger mountain flows and bridge what would otherwise be summer dearth.
var chiuzbaiaPeriods = []FlowPeriod{
	{Name: "Winter Dormancy", StartDay: 1, Duration: 65,
		NectarIntensity: 0.0, PollenIntensity: 0.0, EggRateModifier: 0.05, AttritionModifier: 0.10},
	{Name: "Hazelnut/Alder", StartDay: 66, Duration: 10,
		NectarIntensity: 0.1, PollenIntensity: 0.7, EggRateModifier: 0.6, AttritionModifier: 0.15},
	{Name: "Willow (Salcia)", StartDay: 94, Duration: 15,
		NectarIntensity: 0.4, PollenIntensity: 0.8, EggRateModifier: 0.8, AttritionModifier: 0.18},
	{Name: "Early Spring Buildup", StartDay: 109, Duration: 6,
		NectarIntensity: 0.3, PollenIntensity: 0.6, EggRateModifier: 1.0, AttritionModifier: 0.20},
	{Name: "Plum (Prun)", StartDay: 115, Duration: 10,
		NectarIntensity: 0.7, PollenIntensity: 0.9, EggRateModifier: 1.3, AttritionModifier: 0.20},
	{Name: "Late Fruit Trees", StartDay: 125, Duration: 15,
		NectarIntensity: 0.6, PollenIntensity: 0.8, EggRateModifier: 1.3, AttritionModifier: 0.22},
	{Name: "Acacia (Salcam)", StartDay: 135, Duration: 16,
		NectarIntensity: 0.8, PollenIntensity: 0.5, EggRateModifier: 1.3, AttritionModifier: 0.25},
	{Name: "May-June Transition", StartDay: 151, Duration: 11,
		NectarIntensity: 0.3, PollenIntensity: 0.5, EggRateModifier: 0.9, AttritionModifier: 0.30},
	{Name: "Raspberry (Zmeur)", StartDay: 145, Duration: 37,
		NectarIntensity: 0.9, PollenIntensity: 0.8, EggRateModifier: 1.2, AttritionModifier: 1.2},
	{Name: "Linden (Tei) Large-leaved", StartDay: 175, Duration: 10,
		NectarIntensity: 0.95, PollenIntensity: 0.6, EggRateModifier: 1.1, AttritionModifier: 1.5},
	{Name: "Linden Small/Silver", StartDay: 185, Duration: 16,
		NectarIntensity: 0.95, PollenIntensity: 0.6, EggRateModifier: 1.0, AttritionModifier: 1.8},
	{Name: "Meadow Flora (Fanete)", StartDay: 152, Duration: 107,
		NectarIntensity: 0.6, PollenIntensity: 0.8, EggRateModifier: 1.0, AttritionModifier: 1.5},
	{Name: "Fireweed (Zburatoare)", StartDay: 166, Duration: 88,
		NectarIntensity: 0.8, PollenIntensity: 0.6, EggRateModifier: 1.0, AttritionModifier: 2.0},
	{Name: "Honeydew (Mana)", StartDay: 196, Duration: 63,
		NectarIntensity: 0.8, PollenIntensity: 0.3, EggRateModifier: 0.9, AttritionModifier: 2.3},
	{Name: "Goldenrod", StartDay: 244, Duration: 20,
		NectarIntensity: 0.4, PollenIntensity: 0.5, EggRateModifier: 0.7, AttritionModifier: 2.0},
	{Name: "Fall Aster/Ivy/Crocus", StartDay: 253, Duration: 31,
		NectarIntensity: 0.3, PollenIntensity: 0.5, EggRateModifier: 0.4, AttritionModifier: 1.5},
	{Name: "Late Fall", StartDay: 284, Duration: 31,
		NectarIntensity: 0.1, PollenIntensity: 0.2, EggRateModifier: 0.2, AttritionModifier: 1.0},
	{Name: "Pre-Winter", StartDay: 315, Duration: 20,
		NectarIntensity: 0.0, PollenIntensity: 0.0, EggRateModifier: 0.05, AttritionModifier: 0.25},
	{Name: "Winter Cluster", StartDay: 335, Duration: 31,
		NectarIntensity: 0.0, PollenIntensity: 0.0, EggRateModifier: 0.0, AttritionModifier: 0.10},
}

// BaiaMare returns the preset calendar for Baia Mare (220 m).
func BaiaMare() *Calendar {
	c, err := New("Baia Mare", baiaMarePeriods)
	if err != nil {
		panic(err) // static table, validated by tests
	}
	return c
}

// Chiuzbaia returns the preset calendar for Chiuzbaia (~575 m average).
func Chiuzbaia() *Calendar {
	c, err := New("Chiuzbaia", chiuzbaiaPeriods)
	if err != nil {
		panic(err) // static table, validated by tests
	}
	return c
}

// Preset resolves a location name to its preset calendar.
func Preset(location string) (*Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(location)) {
	case "baia mare", "baia-mare":
		return BaiaMare(), nil
	case "chiuzbaia":
		return Chiuzbaia(), nil
	default:
		return nil, fmt.Errorf("%w: unknown location %q (known: Baia Mare, Chiuzbaia)",
			ErrConfig, location)
	}
}
