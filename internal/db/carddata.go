package db

import "gorm.io/datatypes"

// The fixed Radlands card set the catalog is seeded from. Treated as a
// static dataset: rows are keyed by unique name and overwritten wholesale on
// reseed.

func text(s string) *string { return &s }

func num(n int) *int { return &n }

func abilityList(items ...Ability) datatypes.JSONSlice[Ability] {
	return append(datatypes.JSONSlice[Ability]{}, items...)
}

func traitList(items ...string) datatypes.JSONSlice[string] {
	return append(datatypes.JSONSlice[string]{}, items...)
}

func cardDefinitions() []Card {
	defs := []Card{
		// People.
		{Name: "Mechanic", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(Ability{Description: "Restore a damaged card", WaterCost: 1}),
			Traits:     traitList(),
			JunkEffect: text("Restore")},
		{Name: "Sniper", CardType: CardTypePerson, WaterCost: 3,
			Abilities:  abilityList(Ability{Description: "Damage any target", WaterCost: 2}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Raider", CardType: CardTypePerson, WaterCost: 1,
			Abilities:  abilityList(Ability{Description: "Damage unprotected card", WaterCost: 0}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Medic", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(Ability{Description: "Draw a card", WaterCost: 1}),
			Traits:     traitList(),
			JunkEffect: text("Draw")},
		{Name: "Scout", CardType: CardTypePerson, WaterCost: 1,
			Abilities:  abilityList(),
			Traits:     traitList(),
			JunkEffect: text("Draw")},
		{Name: "Guard", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(),
			Traits:     traitList("Protected"),
			JunkEffect: text("Gain punk")},
		{Name: "Engineer", CardType: CardTypePerson, WaterCost: 3,
			Abilities:  abilityList(Ability{Description: "Gain 2 extra water", WaterCost: 2}),
			Traits:     traitList(),
			JunkEffect: text("Extra water")},
		{Name: "Warrior", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Defender", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(),
			Traits:     traitList("Shield"),
			JunkEffect: text("Restore")},
		{Name: "Assassin", CardType: CardTypePerson, WaterCost: 4,
			Abilities:  abilityList(Ability{Description: "Destroy unprotected person", WaterCost: 3}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Gunner", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(Ability{Description: "Damage any person", WaterCost: 1}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Tank", CardType: CardTypePerson, WaterCost: 3,
			Abilities:  abilityList(),
			Traits:     traitList("Protected", "Shield"),
			JunkEffect: text("Gain punk")},
		{Name: "Demolisher", CardType: CardTypePerson, WaterCost: 3,
			Abilities:  abilityList(Ability{Description: "Destroy a damaged card", WaterCost: 2}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Commando", CardType: CardTypePerson, WaterCost: 3,
			Abilities:  abilityList(Ability{Description: "Damage 2 unprotected cards", WaterCost: 2}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Hoarder", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(Ability{Description: "Draw 2 cards", WaterCost: 2}),
			Traits:     traitList(),
			JunkEffect: text("Draw")},
		{Name: "Bomber", CardType: CardTypePerson, WaterCost: 3,
			Abilities:  abilityList(Ability{Description: "Damage all people in a column", WaterCost: 2}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Saboteur", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(Ability{Description: "Damage a camp", WaterCost: 1}),
			Traits:     traitList(),
			JunkEffect: text("Damage")},
		{Name: "Supplier", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(Ability{Description: "Gain 1 extra water", WaterCost: 1}),
			Traits:     traitList(),
			JunkEffect: text("Extra water")},
		{Name: "Recruiter", CardType: CardTypePerson, WaterCost: 2,
			Abilities:  abilityList(Ability{Description: "Gain a punk", WaterCost: 1}),
			Traits:     traitList(),
			JunkEffect: text("Gain punk")},
		{Name: "Lookout", CardType: CardTypePerson, WaterCost: 1,
			Abilities:  abilityList(Ability{Description: "Look at opponent's hand", WaterCost: 0}),
			Traits:     traitList(),
			JunkEffect: text("Draw")},

		// Events.
		{Name: "Sandstorm", CardType: CardTypeEvent, WaterCost: 2,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Damage"),
			EventEffect:  text("All players discard 1 card"),
			BombPosition: num(2)},
		{Name: "Acid Rain", CardType: CardTypeEvent, WaterCost: 3,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Restore"),
			EventEffect:  text("Damage all people"),
			BombPosition: num(3)},
		{Name: "Supply Drop", CardType: CardTypeEvent, WaterCost: 1,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Draw"),
			EventEffect:  text("Draw 2 cards"),
			BombPosition: num(1)},
		{Name: "Raid", CardType: CardTypeEvent, WaterCost: 2,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Damage"),
			EventEffect:  text("Damage any camp"),
			BombPosition: num(2)},
		{Name: "Scavenge", CardType: CardTypeEvent, WaterCost: 3,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Extra water"),
			EventEffect:  text("Gain 3 extra water"),
			BombPosition: num(3)},
		{Name: "Ambush", CardType: CardTypeEvent, WaterCost: 2,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Damage"),
			EventEffect:  text("Damage 2 unprotected cards"),
			BombPosition: num(1)},
		{Name: "Fortify", CardType: CardTypeEvent, WaterCost: 2,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Gain punk"),
			EventEffect:  text("Gain 2 punks"),
			BombPosition: num(2)},
		{Name: "Betrayal", CardType: CardTypeEvent, WaterCost: 4,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Destroy"),
			EventEffect:  text("Destroy a person"),
			BombPosition: num(3)},
		{Name: "Rally", CardType: CardTypeEvent, WaterCost: 2,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Restore"),
			EventEffect:  text("Restore all your damaged cards"),
			BombPosition: num(2)},
		{Name: "Firestorm", CardType: CardTypeEvent, WaterCost: 3,
			Abilities:    abilityList(),
			Traits:       traitList(),
			JunkEffect:   text("Damage"),
			EventEffect:  text("Damage all camps"),
			BombPosition: num(1)},

		// Camps.
		{Name: "Base Camp", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Draw a card", WaterCost: 2}),
			Traits:      traitList(),
			InitialDraw: num(2)},
		{Name: "Supply Depot", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Gain 2 extra water", WaterCost: 1}),
			Traits:      traitList("Water"),
			InitialDraw: num(2)},
		{Name: "Sniper Tower", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Damage any target", WaterCost: 2}),
			Traits:      traitList(),
			InitialDraw: num(1)},
		{Name: "Medical Bay", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Restore a card", WaterCost: 1}),
			Traits:      traitList(),
			InitialDraw: num(2)},
		{Name: "Armory", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Damage unprotected card", WaterCost: 1}),
			Traits:      traitList(),
			InitialDraw: num(1)},
		{Name: "Garage", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Gain a punk", WaterCost: 1}),
			Traits:      traitList(),
			InitialDraw: num(2)},
		{Name: "Railgun", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Damage any 2 targets", WaterCost: 3}),
			Traits:      traitList(),
			InitialDraw: num(1)},
		{Name: "Arcade", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Draw 2 cards", WaterCost: 3}),
			Traits:      traitList(),
			InitialDraw: num(2)},
		{Name: "Victory Totem", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Damage camp", WaterCost: 2}),
			Traits:      traitList(),
			InitialDraw: num(1)},
		{Name: "Mercenary Camp", CardType: CardTypeCamp,
			Abilities:   abilityList(Ability{Description: "Play person for -1 cost", WaterCost: 0}),
			Traits:      traitList(),
			InitialDraw: num(2)},
	}
	for i := range defs {
		if defs[i].Expansion == "" {
			defs[i].Expansion = "base"
		}
	}
	return defs
}
