package domain

import (
	"fmt"
	"strings"
)

type AttributeNameType string

const (
	AttributeType            AttributeNameType = "TYPE"
	AttributePrimaryMuscle   AttributeNameType = "PRIMARY_MUSCLE"
	AttributeSecondaryMuscle AttributeNameType = "SECONDARY_MUSCLE"
	AttributeEquipment       AttributeNameType = "EQUIPMENT"
	AttributeMechanicsType   AttributeNameType = "MECHANICS_TYPE"
)

var attributeNames = map[AttributeNameType]bool{
	AttributeType:            true,
	AttributePrimaryMuscle:   true,
	AttributeSecondaryMuscle: true,
	AttributeEquipment:       true,
	AttributeMechanicsType:   true,
}

func ParseAttributeName(s string) (AttributeNameType, error) {
	n := AttributeNameType(NormalizeValue(s))
	if !attributeNames[n] {
		return "", fmt.Errorf("%w: %q", ErrInvalidAttributeName, s)
	}
	return n, nil
}

type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "CHEST"
	MuscleShoulders  MuscleGroup = "SHOULDERS"
	MuscleBiceps     MuscleGroup = "BICEPS"
	MuscleTriceps    MuscleGroup = "TRICEPS"
	MuscleForearms   MuscleGroup = "FOREARMS"
	MuscleAbdominals MuscleGroup = "ABDOMINALS"
	MuscleObliques   MuscleGroup = "OBLIQUES"
	MuscleBack       MuscleGroup = "BACK"
	MuscleLats       MuscleGroup = "LATS"
	MuscleTraps      MuscleGroup = "TRAPS"
	MuscleQuadriceps MuscleGroup = "QUADRICEPS"
	MuscleHamstrings MuscleGroup = "HAMSTRINGS"
	MuscleGlutes     MuscleGroup = "GLUTES"
	MuscleCalves     MuscleGroup = "CALVES"
	MuscleAdductors  MuscleGroup = "ADDUCTORS"
	MuscleAbductors  MuscleGroup = "ABDUCTORS"
	MuscleNeck       MuscleGroup = "NECK"
	MuscleFullBody   MuscleGroup = "FULL_BODY"
)

var muscleGroups = map[MuscleGroup]bool{
	MuscleChest: true, MuscleShoulders: true, MuscleBiceps: true, MuscleTriceps: true,
	MuscleForearms: true, MuscleAbdominals: true, MuscleObliques: true, MuscleBack: true,
	MuscleLats: true, MuscleTraps: true, MuscleQuadriceps: true, MuscleHamstrings: true,
	MuscleGlutes: true, MuscleCalves: true, MuscleAdductors: true, MuscleAbductors: true,
	MuscleNeck: true, MuscleFullBody: true,
}

func ParseMuscleGroup(s string) (MuscleGroup, error) {
	m := MuscleGroup(NormalizeValue(s))
	if !muscleGroups[m] {
		return "", fmt.Errorf("%w: %q", ErrInvalidMuscle, s)
	}
	return m, nil
}

type Equipment string

const (
	EquipmentBodyOnly     Equipment = "BODY_ONLY"
	EquipmentDumbbell     Equipment = "DUMBBELL"
	EquipmentBarbell      Equipment = "BARBELL"
	EquipmentKettlebells  Equipment = "KETTLEBELLS"
	EquipmentBands        Equipment = "BANDS"
	EquipmentCable        Equipment = "CABLE"
	EquipmentMachine      Equipment = "MACHINE"
	EquipmentEZBar        Equipment = "EZ_BAR"
	EquipmentPlate        Equipment = "PLATE"
	EquipmentPullupBar    Equipment = "PULLUP_BAR"
	EquipmentBench        Equipment = "BENCH"
	EquipmentMedicineBall Equipment = "MEDICINE_BALL"
	EquipmentSwissBall    Equipment = "SWISS_BALL"
	EquipmentFoamRoll     Equipment = "FOAM_ROLL"
	EquipmentOther        Equipment = "OTHER"
)

var equipmentTypes = map[Equipment]bool{
	EquipmentBodyOnly: true, EquipmentDumbbell: true, EquipmentBarbell: true,
	EquipmentKettlebells: true, EquipmentBands: true, EquipmentCable: true,
	EquipmentMachine: true, EquipmentEZBar: true, EquipmentPlate: true,
	EquipmentPullupBar: true, EquipmentBench: true, EquipmentMedicineBall: true,
	EquipmentSwissBall: true, EquipmentFoamRoll: true, EquipmentOther: true,
}

func ParseEquipment(s string) (Equipment, error) {
	e := Equipment(NormalizeValue(s))
	if !equipmentTypes[e] {
		return "", fmt.Errorf("%w: %q", ErrInvalidEquipment, s)
	}
	return e, nil
}

type ExerciseType string

const (
	TypeStrength             ExerciseType = "STRENGTH"
	TypeCardio               ExerciseType = "CARDIO"
	TypePlyometrics          ExerciseType = "PLYOMETRICS"
	TypeStretching           ExerciseType = "STRETCHING"
	TypePowerlifting         ExerciseType = "POWERLIFTING"
	TypeOlympicWeightlifting ExerciseType = "OLYMPIC_WEIGHTLIFTING"
	TypeStrongman            ExerciseType = "STRONGMAN"
)

var exerciseTypes = map[ExerciseType]bool{
	TypeStrength: true, TypeCardio: true, TypePlyometrics: true, TypeStretching: true,
	TypePowerlifting: true, TypeOlympicWeightlifting: true, TypeStrongman: true,
}

func ParseExerciseType(s string) (ExerciseType, error) {
	t := ExerciseType(NormalizeValue(s))
	if !exerciseTypes[t] {
		return "", fmt.Errorf("%w: %q", ErrInvalidExerciseType, s)
	}
	return t, nil
}

type MechanicsType string

const (
	MechanicsCompound  MechanicsType = "COMPOUND"
	MechanicsIsolation MechanicsType = "ISOLATION"
)

func ParseMechanicsType(s string) (MechanicsType, error) {
	m := MechanicsType(NormalizeValue(s))
	if m != MechanicsCompound && m != MechanicsIsolation {
		return "", fmt.Errorf("%w: %q", ErrInvalidMechanicsType, s)
	}
	return m, nil
}

// ExcludedFromSelection lists attribute values that disqualify an exercise from workout building.
var ExcludedFromSelection = []string{string(TypeStretching)}

// NormalizeValue maps "ez bar", "ez-bar" and "Ez_Bar" to "EZ_BAR".
func NormalizeValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return strings.ToUpper(s)
}
