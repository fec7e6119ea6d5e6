package catalog

// defaultProducts is the compiled-in inventory. Order here is the catalog
// definition order and is what "default" sorting falls back to.
var defaultProducts = []Product{
	{ID: 1, Name: "Atomic Redster G9", Category: "skis", Brand: "Atomic", Level: "Expert", Style: "Racing", PriceCents: 89900, New: true},
	{ID: 2, Name: "Rossignol Experience 86", Category: "skis", Brand: "Rossignol", Level: "Intermediate", Style: "All-Mountain", PriceCents: 64900, Sale: true},
	{ID: 3, Name: "Fischer RC One 72", Category: "skis", Brand: "Fischer", Level: "Intermediate", Style: "All-Mountain", PriceCents: 59900},
	{ID: 4, Name: "Head Kore 93", Category: "skis", Brand: "Head", Level: "Expert", Style: "Freeride", PriceCents: 74900, New: true},
	{ID: 5, Name: "Salomon QST 98", Category: "skis", Brand: "Salomon", Level: "Expert", Style: "Freeride", PriceCents: 69900},
	{ID: 6, Name: "Atomic Bent 85", Category: "skis", Brand: "Atomic", Level: "Beginner", Style: "Park", PriceCents: 44900, Sale: true},
	{ID: 7, Name: "Salomon S/Pro 100", Category: "boots", Brand: "Salomon", Level: "Intermediate", Style: "All-Mountain", PriceCents: 39900},
	{ID: 8, Name: "Atomic Hawx Prime 120", Category: "boots", Brand: "Atomic", Level: "Expert", Style: "Racing", PriceCents: 54900, New: true},
	{ID: 9, Name: "Rossignol Evo 70", Category: "boots", Brand: "Rossignol", Level: "Beginner", Style: "All-Mountain", PriceCents: 19900, Sale: true},
	{ID: 10, Name: "Head Edge LYT 80", Category: "boots", Brand: "Head", Level: "Beginner", Style: "All-Mountain", PriceCents: 24900},
	{ID: 11, Name: "Rossignol Tactic Poles", Category: "poles", Brand: "Rossignol", Level: "Beginner", Style: "All-Mountain", PriceCents: 3900},
	{ID: 12, Name: "Atomic AMT Carbon Poles", Category: "poles", Brand: "Atomic", Level: "Expert", Style: "Racing", PriceCents: 8900, New: true},
	{ID: 13, Name: "Fischer Unlimited Poles", Category: "poles", Brand: "Fischer", Level: "Intermediate", Style: "All-Mountain", PriceCents: 4900},
	{ID: 14, Name: "Salomon Driver Prime Helmet", Category: "helmets", Brand: "Salomon", Level: "Intermediate", Style: "Freeride", PriceCents: 27900, Sale: true},
	{ID: 15, Name: "Atomic Savor Amid Helmet", Category: "helmets", Brand: "Atomic", Level: "Beginner", Style: "All-Mountain", PriceCents: 14900},
	{ID: 16, Name: "Head Rachel Helmet", Category: "helmets", Brand: "Head", Level: "Intermediate", Style: "Park", PriceCents: 17900, New: true},
}
