package repo

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ashiquzzaman/mongocms/internal/app/store/storeerr"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
	"github.com/ashiquzzaman/mongocms/internal/testutil"
)

func TestCreate_AssignsIDAndRoundTrips(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	country := &models.Country{CountryCode: "BD", CountryName: "Bangladesh"}
	created, err := r.Create(ctx, country)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("Create should assign an id")
	}

	got, err := r.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected created country to be found")
	}
	if got.CountryCode != "BD" || got.CountryName != "Bangladesh" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetByID_MissingIsNilNil(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	got, err := r.GetByID(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing document, got %+v", got)
	}
}

func TestUpdate_UpsertIsIdempotent(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	country := &models.Country{CountryCode: "US", CountryName: "United States"}
	if err := r.Update(ctx, country); err != nil {
		t.Fatalf("first Update failed: %v", err)
	}
	if country.ID.IsZero() {
		t.Fatal("Update should assign an id to a new entity")
	}

	country.CountryName = "USA"
	if err := r.Update(ctx, country); err != nil {
		t.Fatalf("second Update failed: %v", err)
	}

	n, err := r.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 document after repeated upserts, got %d", n)
	}

	got, err := r.GetByID(ctx, country.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CountryName != "USA" {
		t.Errorf("expected updated name, got %q", got.CountryName)
	}
}

func TestInsertManyAndUpdateAll(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	batch := []*models.Country{
		{CountryCode: "FR", CountryName: "France"},
		{CountryCode: "DE", CountryName: "Germany"},
	}
	if err := r.InsertMany(ctx, batch); err != nil {
		t.Fatalf("InsertMany failed: %v", err)
	}
	for _, e := range batch {
		if e.ID.IsZero() {
			t.Fatal("InsertMany should assign ids")
		}
	}

	batch[0].CountryName = "République française"
	if err := r.UpdateAll(ctx, batch); err != nil {
		t.Fatalf("UpdateAll failed: %v", err)
	}

	n, err := r.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 documents, got %d", n)
	}
}

func TestFindPage(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	for i := 0; i < 5; i++ {
		_, err := r.Create(ctx, &models.Country{
			CountryCode: fmt.Sprintf("C%d", i),
			CountryName: fmt.Sprintf("Country %d", i),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	for idx, wantLen := range map[int]int{0: 2, 1: 2, 2: 1, 3: 0} {
		page, err := r.FindPage(ctx, bson.M{}, idx, 2)
		if err != nil {
			t.Fatalf("FindPage(%d) failed: %v", idx, err)
		}
		if len(page) != wantLen {
			t.Errorf("FindPage(%d): expected %d items, got %d", idx, wantLen, len(page))
		}
	}

	// A zero page size takes nothing; the driver's limit 0 means "no
	// limit", so this must not fall through to an unlimited find.
	page, err := r.FindPage(ctx, bson.M{}, 0, 0)
	if err != nil {
		t.Fatalf("FindPage with zero size failed: %v", err)
	}
	if len(page) != 0 {
		t.Errorf("zero page size: expected empty page, got %d items", len(page))
	}

	if _, err := r.FindPage(ctx, bson.M{}, -1, 2); !errors.Is(err, storeerr.ErrInvalidPage) {
		t.Errorf("negative page index: expected ErrInvalidPage, got %v", err)
	}
	if _, err := r.FindPage(ctx, bson.M{}, 0, -2); !errors.Is(err, storeerr.ErrInvalidPage) {
		t.Errorf("negative page size: expected ErrInvalidPage, got %v", err)
	}
}

func TestAnyAndDelete(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	created, err := r.Create(ctx, &models.Country{CountryCode: "JP", CountryName: "Japan"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ok, err := r.Any(ctx, bson.M{"country_code": "JP"})
	if err != nil {
		t.Fatalf("Any failed: %v", err)
	}
	if !ok {
		t.Error("expected Any to report a match")
	}

	if err := r.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// Deleting the same id again matches nothing and is still fine.
	if err := r.Delete(ctx, created.ID); err != nil {
		t.Errorf("repeat Delete should not error, got %v", err)
	}

	ok, err = r.Any(ctx, bson.M{"country_code": "JP"})
	if err != nil {
		t.Fatalf("Any failed: %v", err)
	}
	if ok {
		t.Error("expected no match after delete")
	}
}

func TestDeleteWhereAndDeleteAll(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	seed := []*models.Country{
		{CountryCode: "AA", CountryName: "Alpha"},
		{CountryCode: "AB", CountryName: "Beta"},
		{CountryCode: "ZZ", CountryName: "Omega"},
	}
	if err := r.InsertMany(ctx, seed); err != nil {
		t.Fatalf("InsertMany failed: %v", err)
	}

	if err := r.DeleteWhere(ctx, bson.M{"country_code": bson.M{"$regex": "^A"}}); err != nil {
		t.Fatalf("DeleteWhere failed: %v", err)
	}
	n, err := r.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 document after DeleteWhere, got %d", n)
	}

	if err := r.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	n, err = r.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty collection after DeleteAll, got %d", n)
	}
}

type plainDoc struct {
	X int `bson:"x"`
}

func TestCreate_NonEntityType(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[plainDoc](c)

	if _, err := r.Create(ctx, &plainDoc{X: 1}); !errors.Is(err, storeerr.ErrNoID) {
		t.Errorf("expected ErrNoID for a type without id accessors, got %v", err)
	}
}

func TestCreate_NilEntity(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	if _, err := r.Create(ctx, nil); !errors.Is(err, storeerr.ErrNilEntity) {
		t.Errorf("expected ErrNilEntity, got %v", err)
	}
}

func TestNotSupportedOperations(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)
	e := &models.Country{}

	checks := map[string]error{}
	_, err := r.SelectOne(ctx, bson.M{})
	checks["SelectOne"] = err
	_, err = r.Find(ctx, bson.M{})
	checks["Find"] = err
	_, err = r.First(ctx, bson.M{})
	checks["First"] = err
	_, err = r.FirstOrDefault(ctx, bson.M{})
	checks["FirstOrDefault"] = err
	checks["Remove"] = r.Remove(ctx, e)
	checks["Modify"] = r.Modify(ctx, e)
	checks["TrackItem"] = r.TrackItem(e)
	checks["Merge"] = r.Merge(e, e)
	_, err = r.GetPaged(ctx, 0, 10, "country_code", true)
	checks["GetPaged"] = err

	for op, err := range checks {
		if !errors.Is(err, storeerr.ErrNotSupported) {
			t.Errorf("%s: expected ErrNotSupported, got %v", op, err)
		}
	}
}

func TestClose_DisposesRepository(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)
	r.Close()

	if _, err := r.Create(ctx, &models.Country{}); !errors.Is(err, storeerr.ErrDisposed) {
		t.Errorf("Create after Close: expected ErrDisposed, got %v", err)
	}
	if _, err := r.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, storeerr.ErrDisposed) {
		t.Errorf("GetByID after Close: expected ErrDisposed, got %v", err)
	}
	if _, err := r.All(ctx); !errors.Is(err, storeerr.ErrDisposed) {
		t.Errorf("All after Close: expected ErrDisposed, got %v", err)
	}
	// Disposal outranks the not-supported contract.
	if _, err := r.First(ctx, bson.M{}); !errors.Is(err, storeerr.ErrDisposed) {
		t.Errorf("First after Close: expected ErrDisposed, got %v", err)
	}
}

func TestIndexLifecycle(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	if err := r.EnsureIndex(ctx, "country_code", false, true, false); err != nil {
		t.Fatalf("EnsureIndex failed: %v", err)
	}
	// Ensuring the same index again is a no-op.
	if err := r.EnsureIndex(ctx, "country_code", false, true, false); err != nil {
		t.Fatalf("repeat EnsureIndex failed: %v", err)
	}

	ok, err := r.IndexExists(ctx, "country_code")
	if err != nil {
		t.Fatalf("IndexExists failed: %v", err)
	}
	if !ok {
		t.Fatal("expected index on country_code to exist")
	}

	if err := r.DropIndex(ctx, "country_code"); err != nil {
		t.Fatalf("DropIndex failed: %v", err)
	}
	ok, err = r.IndexExists(ctx, "country_code")
	if err != nil {
		t.Fatalf("IndexExists failed: %v", err)
	}
	if ok {
		t.Error("expected index to be gone after DropIndex")
	}
}

func TestCollectionAdmin(t *testing.T) {
	c := testutil.SetupStoreContext(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := New[models.Country](c)

	ok, err := r.CollectionExists(ctx)
	if err != nil {
		t.Fatalf("CollectionExists failed: %v", err)
	}
	if ok {
		t.Fatal("collection should not exist before the first write")
	}

	if _, err := r.Create(ctx, &models.Country{CountryCode: "NL", CountryName: "Netherlands"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ok, err = r.CollectionExists(ctx)
	if err != nil {
		t.Fatalf("CollectionExists failed: %v", err)
	}
	if !ok {
		t.Fatal("collection should exist after a write")
	}

	capped, err := r.IsCapped(ctx)
	if err != nil {
		t.Fatalf("IsCapped failed: %v", err)
	}
	if capped {
		t.Error("a plain collection should not report as capped")
	}

	size, err := r.TotalSize(ctx)
	if err != nil {
		t.Fatalf("TotalSize failed: %v", err)
	}
	if size <= 0 {
		t.Errorf("expected a positive total size, got %d", size)
	}

	if err := r.Drop(ctx); err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	ok, err = r.CollectionExists(ctx)
	if err != nil {
		t.Fatalf("CollectionExists failed: %v", err)
	}
	if ok {
		t.Error("collection should be gone after Drop")
	}
}
