package domain

// Region names a theater of operations. The named continents plus Global are
// the values the generator's catalog knows about; imported files may carry
// anything, so Region stays an open string type.
type Region string

const (
	RegionNorthAmerica Region = "North America"
	RegionSouthAmerica Region = "South America"
	RegionEurope       Region = "Europe"
	RegionAsia         Region = "Asia"
	RegionAfrica       Region = "Africa"
	RegionOceania      Region = "Oceania"
	RegionAntarctica   Region = "Antarctica"
	RegionGlobal       Region = "Global"

	// RegionUnknown marks inputs reconstructed from imported files.
	RegionUnknown Region = "Unknown"
)

// Regions lists the selectable regions in display order.
var Regions = []Region{
	RegionNorthAmerica, RegionSouthAmerica, RegionEurope, RegionAsia,
	RegionAfrica, RegionOceania, RegionAntarctica, RegionGlobal,
}

// IsKnown reports whether r is one of the selectable regions.
func (r Region) IsKnown() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

// GenerationSource records which path produced a GenerationResult.
type GenerationSource string

const (
	SourceRemote     GenerationSource = "remote"
	SourceProcedural GenerationSource = "procedural"
)
