package domain

// SelectionRequest is a validated request for exercises grouped by muscle.
type SelectionRequest struct {
	Muscles   []MuscleGroup
	Equipment []Equipment
	Limit     int
}

// MuscleSelection holds the exercises chosen for one requested muscle group.
type MuscleSelection struct {
	Muscle    MuscleGroup `json:"muscle"`
	Exercises []*Exercise `json:"exercises"`
}

// NewSelectionRequest parses raw values into a SelectionRequest. Duplicate muscles collapse
// to their first occurrence; duplicate equipment is dropped.
func NewSelectionRequest(muscles, equipment []string, limit int) (SelectionRequest, error) {
	if len(muscles) == 0 {
		return SelectionRequest{}, ErrNoMuscles
	}
	if len(equipment) == 0 {
		return SelectionRequest{}, ErrNoEquipment
	}

	req := SelectionRequest{Limit: limit}

	seenMuscles := make(map[MuscleGroup]bool, len(muscles))
	for _, raw := range muscles {
		m, err := ParseMuscleGroup(raw)
		if err != nil {
			return SelectionRequest{}, err
		}
		if seenMuscles[m] {
			continue
		}
		seenMuscles[m] = true
		req.Muscles = append(req.Muscles, m)
	}

	seenEquipment := make(map[Equipment]bool, len(equipment))
	for _, raw := range equipment {
		e, err := ParseEquipment(raw)
		if err != nil {
			return SelectionRequest{}, err
		}
		if seenEquipment[e] {
			continue
		}
		seenEquipment[e] = true
		req.Equipment = append(req.Equipment, e)
	}

	return req, nil
}

// EquipmentValues returns the equipment as plain attribute values.
func (r SelectionRequest) EquipmentValues() []string {
	out := make([]string, len(r.Equipment))
	for i, e := range r.Equipment {
		out[i] = string(e)
	}
	return out
}
