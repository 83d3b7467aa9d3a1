package repository_test

import (
	"testing"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/testutil"
)

// TestHierarchyRepository_GetHierarchy tests tree assembly from the joined query.
//
// WHY: The hierarchy is built from a single LEFT JOIN; the row-folding logic
// must keep empty grouping levels in the tree, keep them out of the flat
// asset list, and denormalize the class name onto every asset.
func TestHierarchyRepository_GetHierarchy(t *testing.T) {
	t.Run("returns an empty hierarchy for a user without classes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHierarchyRepository(db)

		user := testutil.CreateUser(t, db)

		hierarchy, err := repo.GetHierarchy(user.ID)
		if err != nil {
			t.Fatalf("GetHierarchy() returned unexpected error: %v", err)
		}

		if len(hierarchy.Classes) != 0 {
			t.Errorf("Expected no classes, got %d", len(hierarchy.Classes))
		}
		if len(hierarchy.Assets) != 0 {
			t.Errorf("Expected no assets, got %d", len(hierarchy.Assets))
		}
	})

	t.Run("assembles the full tree and the flat asset list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHierarchyRepository(db)

		user := testutil.CreateUser(t, db)
		class := testutil.NewAssetClass(user.ID).WithName("Liquid").Build(t, db)
		instrument := testutil.NewInstrument(class.ID).WithName("Bank Account").Build(t, db)
		provider := testutil.NewProvider(instrument.ID).WithName("First Bank").Build(t, db)
		a1 := testutil.NewAsset(provider.ID).WithName("Checking").Build(t, db)
		a2 := testutil.NewAsset(provider.ID).WithName("Savings").Build(t, db)

		hierarchy, err := repo.GetHierarchy(user.ID)
		if err != nil {
			t.Fatalf("GetHierarchy() returned unexpected error: %v", err)
		}

		if len(hierarchy.Classes) != 1 {
			t.Fatalf("Expected 1 class, got %d", len(hierarchy.Classes))
		}
		classNode := hierarchy.Classes[0]
		if classNode.Name != "Liquid" {
			t.Errorf("Expected class Liquid, got %s", classNode.Name)
		}
		if len(classNode.Instruments) != 1 || len(classNode.Instruments[0].Providers) != 1 {
			t.Fatal("Expected one instrument with one provider")
		}
		if got := len(classNode.Instruments[0].Providers[0].Assets); got != 2 {
			t.Fatalf("Expected 2 assets under the provider, got %d", got)
		}

		if len(hierarchy.Assets) != 2 {
			t.Fatalf("Expected 2 flat assets, got %d", len(hierarchy.Assets))
		}
		for _, asset := range hierarchy.Assets {
			if asset.AssetClassName != "Liquid" {
				t.Errorf("Expected denormalized class name Liquid on %s, got %q", asset.Name, asset.AssetClassName)
			}
			if asset.ID != a1.ID && asset.ID != a2.ID {
				t.Errorf("Unexpected asset %s in flat list", asset.ID)
			}
		}
	})

	t.Run("keeps empty grouping levels in the tree", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHierarchyRepository(db)

		user := testutil.CreateUser(t, db)
		class := testutil.NewAssetClass(user.ID).Build(t, db)
		instrument := testutil.NewInstrument(class.ID).Build(t, db)
		testutil.NewProvider(instrument.ID).Build(t, db)

		hierarchy, err := repo.GetHierarchy(user.ID)
		if err != nil {
			t.Fatalf("GetHierarchy() returned unexpected error: %v", err)
		}

		if len(hierarchy.Classes) != 1 {
			t.Fatalf("Expected the empty class in the tree, got %d classes", len(hierarchy.Classes))
		}
		providers := hierarchy.Classes[0].Instruments[0].Providers
		if len(providers) != 1 {
			t.Fatalf("Expected the empty provider in the tree, got %d", len(providers))
		}
		if len(providers[0].Assets) != 0 {
			t.Errorf("Expected no assets under the empty provider, got %d", len(providers[0].Assets))
		}
		if len(hierarchy.Assets) != 0 {
			t.Errorf("Expected an empty flat list, got %d assets", len(hierarchy.Assets))
		}
	})

	t.Run("does not leak other users' hierarchies", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHierarchyRepository(db)

		other := testutil.CreateHierarchy(t, db)
		testutil.NewAsset(other.Provider.ID).Build(t, db)

		user := testutil.CreateUser(t, db)

		hierarchy, err := repo.GetHierarchy(user.ID)
		if err != nil {
			t.Fatalf("GetHierarchy() returned unexpected error: %v", err)
		}
		if len(hierarchy.Classes) != 0 || len(hierarchy.Assets) != 0 {
			t.Error("Expected an empty hierarchy for an unrelated user")
		}
	})

	t.Run("orders by display order before name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHierarchyRepository(db)

		user := testutil.CreateUser(t, db)
		testutil.NewAssetClass(user.ID).WithName("Alpha").WithDisplayOrder(2).Build(t, db)
		testutil.NewAssetClass(user.ID).WithName("Zulu").WithDisplayOrder(1).Build(t, db)

		hierarchy, err := repo.GetHierarchy(user.ID)
		if err != nil {
			t.Fatalf("GetHierarchy() returned unexpected error: %v", err)
		}

		if len(hierarchy.Classes) != 2 {
			t.Fatalf("Expected 2 classes, got %d", len(hierarchy.Classes))
		}
		if hierarchy.Classes[0].Name != "Zulu" || hierarchy.Classes[1].Name != "Alpha" {
			t.Errorf("Expected display order to win over name, got %s then %s",
				hierarchy.Classes[0].Name, hierarchy.Classes[1].Name)
		}
	})
}

// TestAssetRepository_AssetBelongsToUser tests the ownership walk.
//
// WHY: Every write on an asset starts with this check; it has to walk the
// full provider > instrument > class chain back to the owning user.
func TestAssetRepository_AssetBelongsToUser(t *testing.T) {
	t.Run("true for the owner, false for anyone else", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAssetRepository(db)

		h := testutil.CreateHierarchy(t, db)
		asset := testutil.NewAsset(h.Provider.ID).Build(t, db)
		stranger := testutil.CreateUser(t, db)

		owned, err := repo.AssetBelongsToUser(asset.ID, h.User.ID)
		if err != nil {
			t.Fatalf("AssetBelongsToUser() returned unexpected error: %v", err)
		}
		if !owned {
			t.Error("Expected the owner to pass the ownership check")
		}

		owned, err = repo.AssetBelongsToUser(asset.ID, stranger.ID)
		if err != nil {
			t.Fatalf("AssetBelongsToUser() returned unexpected error: %v", err)
		}
		if owned {
			t.Error("Expected a stranger to fail the ownership check")
		}
	})

	t.Run("false for a nonexistent asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAssetRepository(db)

		user := testutil.CreateUser(t, db)

		owned, err := repo.AssetBelongsToUser(testutil.MakeID(), user.ID)
		if err != nil {
			t.Fatalf("AssetBelongsToUser() returned unexpected error: %v", err)
		}
		if owned {
			t.Error("Expected false for a nonexistent asset")
		}
	})
}
