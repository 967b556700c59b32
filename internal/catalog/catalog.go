// Package catalog reads exercise catalogs from YAML files.
package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"workout-builder-service/internal/core/domain"
)

// File is the top-level YAML document.
type File struct {
	Exercises []Entry `yaml:"exercises"`
}

// Entry is one exercise as written by catalog authors.
type Entry struct {
	Name              string   `yaml:"name"`
	NameEn            string   `yaml:"name_en"`
	Slug              string   `yaml:"slug"`
	SlugEn            string   `yaml:"slug_en"`
	Description       string   `yaml:"description"`
	DescriptionEn     string   `yaml:"description_en"`
	Introduction      string   `yaml:"introduction"`
	IntroductionEn    string   `yaml:"introduction_en"`
	FullVideoURL      string   `yaml:"full_video_url"`
	FullVideoImageURL string   `yaml:"full_video_image_url"`
	Type              []string `yaml:"type"`
	PrimaryMuscles    []string `yaml:"primary_muscles"`
	SecondaryMuscles  []string `yaml:"secondary_muscles"`
	Equipment         []string `yaml:"equipment"`
	Mechanics         []string `yaml:"mechanics"`
}

func LoadFile(path string) ([]*domain.Exercise, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a catalog document. Unknown keys are rejected so typos do not silently
// drop attributes.
func Decode(r io.Reader) ([]*domain.Exercise, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return []*domain.Exercise{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	out := make([]*domain.Exercise, 0, len(file.Exercises))
	for _, e := range file.Exercises {
		out = append(out, e.toDomain())
	}
	return out, nil
}

func (e Entry) toDomain() *domain.Exercise {
	ex := &domain.Exercise{
		Name:              e.Name,
		NameEn:            e.NameEn,
		Slug:              e.Slug,
		SlugEn:            e.SlugEn,
		Description:       e.Description,
		DescriptionEn:     e.DescriptionEn,
		Introduction:      e.Introduction,
		IntroductionEn:    e.IntroductionEn,
		FullVideoURL:      e.FullVideoURL,
		FullVideoImageURL: e.FullVideoImageURL,
	}

	add := func(name domain.AttributeNameType, values []string) {
		for _, v := range values {
			ex.Attributes = append(ex.Attributes, domain.ExerciseAttribute{
				AttributeName:  domain.AttributeName{Name: name},
				AttributeValue: domain.AttributeValue{Value: domain.NormalizeValue(v)},
			})
		}
	}
	add(domain.AttributeType, e.Type)
	add(domain.AttributePrimaryMuscle, e.PrimaryMuscles)
	add(domain.AttributeSecondaryMuscle, e.SecondaryMuscles)
	add(domain.AttributeEquipment, e.Equipment)
	add(domain.AttributeMechanicsType, e.Mechanics)

	return ex
}
