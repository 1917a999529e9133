package reading

// HouseMeaning names a house and its traditional domain.
type HouseMeaning struct {
	Name        string
	Description string
}

// HouseMeanings is indexed by house number; index 0 is unused.
var HouseMeanings = [13]HouseMeaning{
	1:  {"Self", "identity, appearance, vitality, life force"},
	2:  {"Resources", "money, possessions, values, self-worth"},
	3:  {"Communication", "siblings, short trips, learning, daily communication"},
	4:  {"Home", "family, roots, foundations, private life"},
	5:  {"Pleasure", "creativity, romance, children, self-expression"},
	6:  {"Health", "daily work, service, health, routines"},
	7:  {"Relationships", "partnerships, marriage, contracts, open enemies"},
	8:  {"Transformation", "death, rebirth, shared resources, occult, sex"},
	9:  {"Wisdom", "philosophy, higher learning, long journeys, spirituality"},
	10: {"Career", "public life, reputation, career, authority"},
	11: {"Community", "friends, groups, hopes, dreams, social networks"},
	12: {"Subconscious", "secrets, hidden enemies, karma, spirituality, solitude"},
}
