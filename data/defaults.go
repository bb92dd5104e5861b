package data

// DefaultCatalog returns the built-in catalog used when no catalog file is
// configured: a graveyard themed crypt with a merchant and a treasure vault.
func DefaultCatalog() *RoomCatalog {
	graveTall := InteriorObject{Name: "grave_1x2", Width: 1, Height: 2, MinQuantity: 1, MaxQuantity: 3, Placement: PlaceNearWall}
	graveWide := InteriorObject{Name: "grave_2x1", Width: 2, Height: 1, MinQuantity: 1, MaxQuantity: 3, Placement: PlaceNearWall}
	lantern := InteriorObject{Name: "lantern", Width: 1, Height: 1, MinQuantity: 1, MaxQuantity: 2, Placement: PlaceRandom}
	spikes := InteriorObject{Name: "spikes", Width: 1, Height: 1, MinQuantity: 0, MaxQuantity: 3, UnlockLevel: 2, Placement: PlaceRandom}
	box := InteriorObject{Name: "box", Width: 1, Height: 1, MinQuantity: 1, MaxQuantity: 2, Placement: PlaceNearWall}
	cart := InteriorObject{Name: "merchant_cart", Width: 2, Height: 2, MinQuantity: 1, MaxQuantity: 1, Placement: PlaceNearWall}

	enemies := []Enemy{
		{Name: "skeleton", MinQuantity: 1, MaxQuantity: 3, AppearanceLevel: 1},
		{Name: "bat", MinQuantity: 2, MaxQuantity: 4, AppearanceLevel: 1},
		{Name: "ghoul", MinQuantity: 1, MaxQuantity: 2, AppearanceLevel: 2},
		{Name: "wraith", MinQuantity: 1, MaxQuantity: 1, AppearanceLevel: 4},
	}

	return &RoomCatalog{
		Rooms: map[string]*RoomContent{
			RoleSpawn: {
				Feature: "player",
				Objects: []InteriorObject{withMode(graveTall, PlaceRandom), withMode(graveWide, PlaceRandom), lantern},
			},
			RoleExit: {
				Feature: "exit",
				Objects: []InteriorObject{graveTall, graveWide, lantern, spikes, box},
			},
			RoleGeneric: {
				Objects:         []InteriorObject{graveTall, graveWide, lantern, spikes},
				CanSpawnEnemies: true,
				Enemies:         enemies,
			},
			RoleTreasure: {
				Feature:         "treasure_chest",
				Objects:         []InteriorObject{lantern, spikes},
				CanSpawnEnemies: true,
				Enemies:         enemies,
			},
			RoleShop: {
				Feature: "merchant",
				Objects: []InteriorObject{lantern, cart, box},
			},
		},
	}
}

func withMode(obj InteriorObject, mode PlacementMode) InteriorObject {
	obj.Placement = mode
	return obj
}
