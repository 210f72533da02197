package save

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/weapon"
)

// Document is a decoded save blob. Upgrades edit it in place.
type Document map[string]any

// hero keys the per-character maps of saves before 0.20.
const hero = "renzo"

// oldestUpgradable is the first version the chain knows how to read.
const oldestUpgradable = 7210

// step upgrades saves with a version in [from, to] and returns the version
// it upgraded to.
type step struct {
	from, to int
	apply    func(doc Document) (int, error)
}

var steps = []step{
	{7210, 8289, upgradeTo015},
	{8290, 11059, upgradeTo016},
	{11060, 11129, upgradeTo017},
	{11130, 11199, upgradeTo018},
	{11200, 11269, upgradeTo019},
	{11270, 102039, upgradeTo020},
}

// Upgrade brings doc to CurrentVersion, one step at a time. It reports
// whether anything changed. A current document is left untouched.
func Upgrade(doc Document) (bool, error) {
	v, err := doc.Version()
	if err != nil {
		return false, err
	}
	if v == CurrentVersion {
		return false, nil
	}
	if v < oldestUpgradable || v > CurrentVersion {
		return false, fmt.Errorf("%w: %d (%s)", ErrUnknownVersion, v, VersionName(v))
	}

	for _, s := range steps {
		if v < s.from || v > s.to {
			continue
		}
		next, err := s.apply(doc)
		if err != nil {
			return true, fmt.Errorf("upgrading from %d: %w", v, err)
		}
		v = next
		doc["version"] = v
	}
	if v != CurrentVersion {
		return true, fmt.Errorf("%w: chain stopped at %d", ErrUnknownVersion, v)
	}
	return true, nil
}

// Version reads the version tag.
func (d Document) Version() (int, error) {
	n, err := number(d["version"])
	if err != nil {
		return 0, fmt.Errorf("%w: version: %v", ErrCorruptSave, err)
	}
	return int(n), nil
}

// upgradeTo015 drops the first-level flag, resets the melee weapon to its
// first level and hands out a bow.
func upgradeTo015(doc Document) (int, error) {
	delete(doc, "first_level")
	sel, err := object(doc, "selection")
	if err != nil {
		return 0, err
	}
	melee, err := object(sel, weapon.Melee.String())
	if err != nil {
		return 0, err
	}
	melee["level"] = 1
	melee["damage"] = map[string]any{"1": 1.0}

	bow, err := weaponDoc(weapon.MakeshiftBow())
	if err != nil {
		return 0, err
	}
	sel[weapon.Ranged.String()] = bow
	return 8290, nil
}

// upgradeTo016 stores health as a float.
func upgradeTo016(doc Document) (int, error) {
	health, err := object(doc, "health")
	if err != nil {
		return 0, err
	}
	h, err := number(health[hero])
	if err != nil {
		return 0, fmt.Errorf("%w: health: %v", ErrCorruptSave, err)
	}
	health[hero] = h
	return 11060, nil
}

// upgradeTo017 adds stamina.
func upgradeTo017(doc Document) (int, error) {
	doc["stamina"] = map[string]any{hero: config.Economy.MaxStamina}
	return 11130, nil
}

// upgradeTo018 adds melee durability and the magical slot.
func upgradeTo018(doc Document) (int, error) {
	sel, err := object(doc, "selection")
	if err != nil {
		return 0, err
	}
	melee, err := object(sel, weapon.Melee.String())
	if err != nil {
		return 0, err
	}
	knife := weapon.IronKnife()
	melee["description"] = knife.Description
	meleeStats, ok := melee["melee"].(map[string]any)
	if !ok {
		meleeStats = map[string]any{}
		melee["melee"] = meleeStats
	}
	meleeStats["durability"] = knife.Melee.Durability
	meleeStats["max_durability"] = knife.Melee.MaxDurability

	ranged, err := object(sel, weapon.Ranged.String())
	if err != nil {
		return 0, err
	}
	ranged["description"] = weapon.MakeshiftBow().Description

	staff, err := weaponDoc(weapon.StarterStaff())
	if err != nil {
		return 0, err
	}
	sel[weapon.Magical.String()] = staff
	return 11200, nil
}

// upgradeTo019 adds the energy overflow bank.
func upgradeTo019(doc Document) (int, error) {
	doc["energy_overflow"] = map[string]any{hero: 0}
	doc["max_energy_overflow"] = map[string]any{hero: config.Economy.MaxEnergyOverflow}
	return 11270, nil
}

// upgradeTo020 folds the per-character maps into the pools object, moves
// the weapons into the loadout and adds the generator state.
func upgradeTo020(doc Document) (int, error) {
	pools := map[string]any{}
	fields := []struct {
		key string
		def any
	}{
		{"health", config.Economy.MaxHealth},
		{"max_health", config.Economy.MaxHealth},
		{"energy", 0},
		{"max_energy", config.Economy.MaxEnergy},
		{"energy_overflow", 0},
		{"max_energy_overflow", config.Economy.MaxEnergyOverflow},
		{"stamina", config.Economy.MaxStamina},
		{"max_stamina", config.Economy.MaxStamina},
	}
	for _, f := range fields {
		pools[f.key] = f.def
		if m, ok := doc[f.key].(map[string]any); ok {
			if v, ok := m[hero]; ok {
				pools[f.key] = v
			}
		}
		delete(doc, f.key)
	}
	doc["pools"] = pools

	sel, err := object(doc, "selection")
	if err != nil {
		return 0, err
	}
	inventory, ok := doc["inventory"].([]any)
	if !ok {
		inventory = []any{}
	}
	doc["loadout"] = map[string]any{
		"selection": sel,
		"inventory": inventory,
	}
	delete(doc, "selection")
	delete(doc, "inventory")

	doc["rng"] = nil
	doc["loaded_from_save"] = false
	return 102040, nil
}

func object(m map[string]any, key string) (map[string]any, error) {
	v, ok := m[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an object", ErrCorruptSave, key)
	}
	return v, nil
}

// weaponDoc encodes w the way it appears in a decoded save.
func weaponDoc(w *weapon.Weapon) (map[string]any, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	}
	return 0, fmt.Errorf("not a number: %v", v)
}
