package repositories

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/pkg/apperrors"
)

func mustCreate(t *testing.T, r *CourseRepository, c models.Course) *models.Course {
	t.Helper()
	got, err := r.CreateCourse(context.Background(), &c)
	if err != nil {
		t.Fatalf("CreateCourse(%s): %v", c.Name, err)
	}
	return got
}

func TestCourseRepository_CreateThenGet(t *testing.T) {
	r := NewCourseRepository()
	desc := "Three year program"
	created := mustCreate(t, r, models.Course{
		Name: "BCA", Duration: "3 yrs", AnnualFee: 110000, Category: "undergraduate", Description: &desc,
	})

	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if created.Term.TotalYears() != 3 {
		t.Errorf("Term = %+v, want 3 years", created.Term)
	}
	if !created.HasTag(models.CategoryIT) {
		t.Error("expected BCA to carry the it tag")
	}

	fetched, err := r.GetCourseByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetCourseByID: %v", err)
	}
	if !reflect.DeepEqual(created, fetched) {
		t.Errorf("fetched %+v, want %+v", fetched, created)
	}
}

func TestCourseRepository_ExplicitTermKept(t *testing.T) {
	r := NewCourseRepository()
	c := mustCreate(t, r, models.Course{Name: "BHM", Duration: "four years", Term: models.Term{Years: 3, ExtraYears: 1}})
	if c.Term.TotalYears() != 4 {
		t.Errorf("Term = %+v, want explicit 3+1", c.Term)
	}
}

func TestCourseRepository_SequentialIDs(t *testing.T) {
	r := NewCourseRepository()
	for i := 1; i <= 3; i++ {
		c := mustCreate(t, r, models.Course{Name: "Course", Duration: "1 yr"})
		if c.ID != int64(i) {
			t.Errorf("course %d got id %d", i, c.ID)
		}
	}
}

func TestCourseRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	r := NewCourseRepository()
	const n = 100

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := r.CreateCourse(context.Background(), &models.Course{Name: "X", Duration: "2 yrs"})
			if err != nil {
				t.Error(err)
				return
			}
			ids <- c.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n || r.Count() != n {
		t.Errorf("got %d ids, count %d, want %d", len(seen), r.Count(), n)
	}
}

func TestCourseRepository_NotFound(t *testing.T) {
	r := NewCourseRepository()
	if _, err := r.GetCourseByID(context.Background(), 42); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
	if _, err := r.GetCourseByName(context.Background(), "law"); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestCourseRepository_ReturnsCopies(t *testing.T) {
	r := NewCourseRepository()
	created := mustCreate(t, r, models.Course{Name: "MCA", Duration: "3 + 1 yrs", AnnualFee: 145000})
	created.AnnualFee = 1

	all, _ := r.GetAllCourses(context.Background())
	all[0].Name = "changed"

	fetched, _ := r.GetCourseByID(context.Background(), created.ID)
	if fetched.AnnualFee != 145000 || fetched.Name != "MCA" {
		t.Errorf("stored record was mutated: %+v", fetched)
	}
}

func TestCourseRepository_Queries(t *testing.T) {
	r := NewCourseRepository()
	mustCreate(t, r, models.Course{Name: "BSc Physics", Category: "undergraduate", Duration: "3 yrs"})
	mustCreate(t, r, models.Course{Name: "MCA", Category: "postgraduate", Duration: "3 + 1 yrs"})
	mustCreate(t, r, models.Course{Name: "MSc Physics", Category: "postgraduate", Duration: "2 yrs"})

	ctx := context.Background()
	byName, err := r.GetCourseByName(ctx, "physics")
	if err != nil || byName.ID != 1 {
		t.Errorf("GetCourseByName(physics) = %v, %v; want id 1", byName, err)
	}

	it, _ := r.GetCoursesByCategory(ctx, "it")
	if len(it) != 1 || it[0].Name != "MCA" {
		t.Errorf("it = %v", it)
	}

	pg, _ := r.GetCoursesByCategory(ctx, "postgraduate")
	if len(pg) != 2 {
		t.Errorf("postgraduate = %d courses, want 2", len(pg))
	}

	found, _ := r.SearchCourses(ctx, "PHYS")
	if len(found) != 2 {
		t.Errorf("search PHYS = %d courses, want 2", len(found))
	}
}
