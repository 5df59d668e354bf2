// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"go-polarity-shooter/internal/component"
	"os"
)

// Definitions - таблицы врагов в виде, пригодном для файла и записи партии.
type Definitions struct {
	Sizes    map[string]EnemySizeDefinition `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Specials map[string]SpecialDefinition   `json:"specials,omitempty" yaml:"specials,omitempty"`
}

// IsEmpty - в наборе нет ни одной записи.
func (d Definitions) IsEmpty() bool {
	return len(d.Sizes) == 0 && len(d.Specials) == 0
}

// rawDefinitions хранит записи файла до слияния, чтобы пропущенные поля
// сохраняли текущие значения.
type rawDefinitions struct {
	Sizes    map[string]json.RawMessage `json:"sizes"`
	Specials map[string]json.RawMessage `json:"specials"`
}

// Current возвращает копию действующих таблиц.
func Current() Definitions {
	d := Definitions{
		Sizes:    make(map[string]EnemySizeDefinition, len(EnemySizes)),
		Specials: make(map[string]SpecialDefinition, len(SpecialDefs)),
	}
	for size, def := range EnemySizes {
		d.Sizes[size.String()] = def
	}
	for kind, def := range SpecialDefs {
		d.Specials[kind.String()] = def
	}
	return d
}

// Apply проверяет набор целиком и только потом подменяет таблицы.
// Записи, которых нет в наборе, не меняются.
func Apply(d Definitions) error {
	sizes, specials := copyTables()
	for name, def := range d.Sizes {
		size, err := sizeByName(name)
		if err != nil {
			return err
		}
		sizes[size] = def
	}
	for name, def := range d.Specials {
		kind, err := specialByName(name)
		if err != nil {
			return err
		}
		specials[kind] = def
	}
	if err := validate(sizes); err != nil {
		return err
	}
	EnemySizes, SpecialDefs = sizes, specials
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and merges it into EnemySizes and SpecialDefs.
// Fields missing from the file keep their current values; on error nothing changes.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var raw rawDefinitions
	if err := json.Unmarshal(file, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	sizes, specials := copyTables()
	for name, body := range raw.Sizes {
		size, err := sizeByName(name)
		if err != nil {
			return err
		}
		def := sizes[size]
		if err := json.Unmarshal(body, &def); err != nil {
			return fmt.Errorf("enemy size %q: %w", name, err)
		}
		sizes[size] = def
	}
	for name, body := range raw.Specials {
		kind, err := specialByName(name)
		if err != nil {
			return err
		}
		def := specials[kind]
		if err := json.Unmarshal(body, &def); err != nil {
			return fmt.Errorf("special enemy %q: %w", name, err)
		}
		specials[kind] = def
	}
	if err := validate(sizes); err != nil {
		return err
	}

	EnemySizes, SpecialDefs = sizes, specials
	return nil
}

func copyTables() (map[component.EnemySize]EnemySizeDefinition, map[component.SpecialKind]SpecialDefinition) {
	sizes := make(map[component.EnemySize]EnemySizeDefinition, len(EnemySizes))
	for k, v := range EnemySizes {
		sizes[k] = v
	}
	specials := make(map[component.SpecialKind]SpecialDefinition, len(SpecialDefs))
	for k, v := range SpecialDefs {
		specials[k] = v
	}
	return sizes, specials
}

func validate(sizes map[component.EnemySize]EnemySizeDefinition) error {
	for size, def := range sizes {
		if def.Radius <= 0 {
			return fmt.Errorf("enemy size %q: radius must be positive", size)
		}
	}
	return nil
}

func sizeByName(name string) (component.EnemySize, error) {
	for _, size := range []component.EnemySize{component.SizeSmall, component.SizeMedium, component.SizeLarge} {
		if size.String() == name {
			return size, nil
		}
	}
	return component.SizeMedium, fmt.Errorf("unknown enemy size %q", name)
}

func specialByName(name string) (component.SpecialKind, error) {
	for _, kind := range component.SpecialKinds {
		if kind.String() == name {
			return kind, nil
		}
	}
	return component.SpecialNone, fmt.Errorf("unknown special enemy %q", name)
}
