package catalog

// builtinCards is the default card set. Thirty templates across the four
// types so a full deck holds every id exactly once.
var builtinCards = []Card{
	// Attack cards
	{ID: 1, Name: "Fireball", Type: TypeAttack, Cost: 3, Attack: 4, Defense: 1, Description: "Deal 4 damage to a target."},
	{ID: 2, Name: "Quick Strike", Type: TypeAttack, Cost: 1, Attack: 2, Defense: 1, Description: "A fast attack that can strike first."},
	{ID: 3, Name: "Meteor Shower", Type: TypeAttack, Cost: 6, Attack: 7, Defense: 2, Description: "Rain down destruction upon your enemies."},
	{ID: 4, Name: "Assassin's Blade", Type: TypeAttack, Cost: 4, Attack: 5, Defense: 2, Description: "Strike from the shadows for increased damage."},
	{ID: 5, Name: "Thunder Strike", Type: TypeAttack, Cost: 5, Attack: 6, Defense: 2, Description: "Call lightning to strike your opponents."},
	{ID: 6, Name: "Blade Dance", Type: TypeAttack, Cost: 2, Attack: 3, Defense: 1, Description: "A flurry of slashes that is hard to block."},

	// Defense cards
	{ID: 11, Name: "Shield Wall", Type: TypeDefense, Cost: 2, Attack: 0, Defense: 5, Description: "Create a defensive barrier."},
	{ID: 12, Name: "Healing Light", Type: TypeDefense, Cost: 3, Attack: 0, Defense: 4, Description: "Restore health to your character."},
	{ID: 13, Name: "Iron Fortress", Type: TypeDefense, Cost: 5, Attack: 1, Defense: 8, Description: "A nearly impenetrable defensive structure."},
	{ID: 14, Name: "Guardian Angel", Type: TypeDefense, Cost: 4, Attack: 2, Defense: 6, Description: "Protects you from harm and strikes back."},
	{ID: 15, Name: "Reflective Barrier", Type: TypeDefense, Cost: 4, Attack: 0, Defense: 7, Description: "Reflects some damage back to the attacker."},
	{ID: 16, Name: "Stone Bulwark", Type: TypeDefense, Cost: 3, Attack: 1, Defense: 5, Description: "An unyielding wall of enchanted stone."},

	// Magic cards
	{ID: 21, Name: "Arcane Missile", Type: TypeMagic, Cost: 2, Attack: 3, Defense: 1, Description: "A magical projectile that never misses."},
	{ID: 22, Name: "Mind Control", Type: TypeMagic, Cost: 7, Attack: 3, Defense: 3, Description: "Take control of an enemy creature temporarily."},
	{ID: 23, Name: "Frost Nova", Type: TypeMagic, Cost: 3, Attack: 2, Defense: 2, Description: "Freeze all enemy creatures for one turn."},
	{ID: 24, Name: "Arcane Intellect", Type: TypeMagic, Cost: 3, Attack: 1, Defense: 2, Description: "Draw two additional cards from your deck."},
	{ID: 25, Name: "Polymorph", Type: TypeMagic, Cost: 4, Attack: 1, Defense: 1, Description: "Transform an enemy creature into a 1/1 sheep."},
	{ID: 26, Name: "Shadow Bolt", Type: TypeMagic, Cost: 5, Attack: 5, Defense: 2, Description: "A bolt of pure shadow energy."},

	// Creature cards
	{ID: 31, Name: "Knight", Type: TypeCreature, Cost: 3, Attack: 3, Defense: 3, Description: "A well-balanced warrior."},
	{ID: 32, Name: "Dragon", Type: TypeCreature, Cost: 8, Attack: 8, Defense: 8, Description: "A powerful flying creature that breathes fire."},
	{ID: 33, Name: "Wolf Pack", Type: TypeCreature, Cost: 4, Attack: 5, Defense: 2, Description: "A group of wolves that hunt together."},
	{ID: 34, Name: "Elf Archer", Type: TypeCreature, Cost: 2, Attack: 3, Defense: 1, Description: "A skilled archer with precision attacks."},
	{ID: 35, Name: "Golem", Type: TypeCreature, Cost: 5, Attack: 4, Defense: 6, Description: "A slow but powerful construct of stone."},
	{ID: 36, Name: "Giant", Type: TypeCreature, Cost: 6, Attack: 6, Defense: 6, Description: "A massive creature that towers over the battlefield."},
	{ID: 37, Name: "Wizard", Type: TypeCreature, Cost: 4, Attack: 2, Defense: 3, Description: "A spellcaster with arcane knowledge."},
	{ID: 38, Name: "Goblin Scout", Type: TypeCreature, Cost: 1, Attack: 2, Defense: 1, Description: "A quick and sneaky scout."},
	{ID: 39, Name: "Serpent", Type: TypeCreature, Cost: 3, Attack: 4, Defense: 2, Description: "A poisonous snake with deadly venom."},
	{ID: 40, Name: "Phoenix", Type: TypeCreature, Cost: 7, Attack: 6, Defense: 5, Description: "A mythical bird that can be reborn from its ashes."},
	{ID: 41, Name: "Treant", Type: TypeCreature, Cost: 4, Attack: 3, Defense: 5, Description: "An ancient tree roused to battle."},
	{ID: 42, Name: "Imp", Type: TypeCreature, Cost: 1, Attack: 1, Defense: 2, Description: "A mischievous little demon."},
}
