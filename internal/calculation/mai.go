package calculation

// MAIFallbackPropertyType is the single property type treated as MAI when a
// building has no entry in the designation lookup. The lookup itself is
// always authoritative when an entry exists.
const MAIFallbackPropertyType = "Manufacturing/Industrial Plant"

// MAIResolver determines whether a building belongs to the MAI category
// with its relaxed reduction targets. It is a pure lookup with no side
// effects.
type MAIResolver struct {
	designations map[string]bool
}

// NewMAIResolver creates a resolver backed by an explicit building_id
// designation lookup. A nil map is allowed and leaves only the
// property-type fallback.
func NewMAIResolver(designations map[string]bool) *MAIResolver {
	return &MAIResolver{designations: designations}
}

// IsMAIDesignated reports whether the building is MAI. An explicit lookup
// entry wins regardless of property type; otherwise the property-type
// fallback applies.
func (r *MAIResolver) IsMAIDesignated(buildingID, propertyType string) bool {
	if designated, ok := r.designations[buildingID]; ok {
		return designated
	}
	return propertyType == MAIFallbackPropertyType
}
