package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rishindramani/awesome-referrals-sub000/repository"
)

func newTestJobService() *JobService {
	return NewJobService(
		WithJobRepository(repository.NewJobRepository(repository.DefaultJobs())),
		WithCompanyRepository(repository.NewCompanyRepository(repository.DefaultCompanies())),
		WithSavedJobRepository(repository.NewSavedJobRepository()),
	)
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestJobList_RemoteAndSkillFilter(t *testing.T) {
	svc := newTestJobService()

	page, err := svc.List(context.Background(), JobQuery{
		Remote: boolPtr(true),
		Skills: []string{"react"},
	}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if page.Total != 1 || len(page.Jobs) != 1 {
		t.Fatalf("got %d jobs (total %d), want exactly 1", len(page.Jobs), page.Total)
	}
	job := page.Jobs[0]
	if job.Title != "Frontend Developer" {
		t.Fatalf("matched %q, want the Frontend Developer posting", job.Title)
	}
	if job.Company == nil || job.Company.ID != job.CompanyID {
		t.Fatal("posting is missing its embedded company")
	}
	if job.IsSaved {
		t.Fatal("anonymous viewer must see isSaved=false")
	}
}

func TestJobList_FiltersAreConjunctive(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()

	// Remote alone matches several postings.
	remote, err := svc.List(ctx, JobQuery{Remote: boolPtr(true)}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if remote.Total < 2 {
		t.Fatalf("remote filter matched %d, want several", remote.Total)
	}

	// Adding a location predicate can only narrow the result.
	narrowed, err := svc.List(ctx, JobQuery{Remote: boolPtr(true), Location: "Austin"}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if narrowed.Total >= remote.Total {
		t.Fatalf("adding a predicate grew the result: %d -> %d", remote.Total, narrowed.Total)
	}
	for _, job := range narrowed.Jobs {
		if !job.IsRemote || job.Location != "Austin, TX" {
			t.Fatalf("job %s escaped the conjunction: remote=%v location=%q", job.ID, job.IsRemote, job.Location)
		}
	}
}

func TestJobList_SalaryFitsWithin(t *testing.T) {
	svc := newTestJobService()

	// [100k, 150k] keeps only postings whose whole range fits inside.
	page, err := svc.List(context.Background(), JobQuery{
		SalaryMin: intPtr(100000),
		SalaryMax: intPtr(150000),
	}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, job := range page.Jobs {
		if job.SalaryMin < 100000 || job.SalaryMax > 150000 {
			t.Fatalf("job %s [%d, %d] does not fit within the requested band", job.ID, job.SalaryMin, job.SalaryMax)
		}
	}
	if page.Total == 0 {
		t.Fatal("expected at least one posting inside [100k, 150k]")
	}
}

func TestJobList_PaginationPartitionsResults(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()

	all, err := svc.List(ctx, JobQuery{Limit: 100}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	total := all.Total
	if total != 8 {
		t.Fatalf("catalog has %d jobs, want 8", total)
	}

	limit := 3
	seen := map[string]bool{}
	count := 0
	for page := 1; ; page++ {
		got, err := svc.List(ctx, JobQuery{Page: page, Limit: limit}, "")
		if err != nil {
			t.Fatalf("List page %d failed: %v", page, err)
		}
		if got.Total != total {
			t.Fatalf("page %d reports total %d, want %d", page, got.Total, total)
		}
		if want := (total + limit - 1) / limit; got.TotalPages != want {
			t.Fatalf("total_pages = %d, want %d", got.TotalPages, want)
		}
		if len(got.Jobs) == 0 {
			break
		}
		for _, job := range got.Jobs {
			if seen[job.ID] {
				t.Fatalf("job %s appeared on more than one page", job.ID)
			}
			seen[job.ID] = true
			count++
		}
	}
	if count != total {
		t.Fatalf("pages yielded %d jobs, want %d", count, total)
	}
}

func TestJobList_DefaultsAndClamping(t *testing.T) {
	svc := newTestJobService()

	page, err := svc.List(context.Background(), JobQuery{Page: 0, Limit: 0}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("defaults = page %d limit %d, want 1/10", page.Page, page.Limit)
	}

	// A page past the end is empty, not an error.
	past, err := svc.List(context.Background(), JobQuery{Page: 99, Limit: 10}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(past.Jobs) != 0 || past.Total != 8 {
		t.Fatalf("page past the end: %d jobs total %d, want 0/8", len(past.Jobs), past.Total)
	}
}

func TestJobList_SortByTitleAscending(t *testing.T) {
	svc := newTestJobService()

	page, err := svc.List(context.Background(), JobQuery{SortBy: "title", SortDir: "ASC", Limit: 100}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i := 1; i < len(page.Jobs); i++ {
		if page.Jobs[i-1].Title > page.Jobs[i].Title {
			t.Fatalf("titles out of order at %d: %q > %q", i, page.Jobs[i-1].Title, page.Jobs[i].Title)
		}
	}
}

func TestJobList_RelevancePutsTitleMatchesFirst(t *testing.T) {
	svc := newTestJobService()

	page, err := svc.List(context.Background(), JobQuery{Query: "engineer", Limit: 100}, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Jobs) != 8 {
		t.Fatalf("relevance mode returned %d jobs, want the full catalog", len(page.Jobs))
	}

	inTail := false
	for _, job := range page.Jobs {
		match := containsFold(job.Title, "engineer")
		if !match {
			inTail = true
		}
		if match && inTail {
			t.Fatalf("title match %q appeared after a non-match", job.Title)
		}
	}
}

func TestJobSave_Idempotent(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()

	already, err := svc.Save(ctx, "3", "user-1")
	if err != nil || already {
		t.Fatalf("first save: already=%v err=%v", already, err)
	}
	already, err = svc.Save(ctx, "3", "user-1")
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if !already {
		t.Fatal("second save should report the existing bookmark")
	}

	saved, err := svc.ListSaved(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListSaved failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved list has %d entries after a double save, want 1", len(saved))
	}
	if !saved[0].IsSaved {
		t.Fatal("saved listing must carry isSaved=true")
	}
}

func TestJobSave_UnknownJob(t *testing.T) {
	svc := newTestJobService()
	if _, err := svc.Save(context.Background(), "no-such-job", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("saving an unknown job: got %v, want ErrNotFound", err)
	}
}

func TestJobUnsave_MissingBookmark(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()

	if err := svc.Unsave(ctx, "3", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unsaving a never-saved job: got %v, want ErrNotFound", err)
	}

	if _, err := svc.Save(ctx, "1", "user-1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := svc.Unsave(ctx, "3", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unsaving the wrong job: got %v, want ErrNotFound", err)
	}
	saved, err := svc.ListSaved(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListSaved failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("failed unsave changed the collection: %d entries, want 1", len(saved))
	}
}

func TestJobGetByID_ViewerSaveState(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()

	if _, err := svc.Save(ctx, "3", "user-1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	mine, err := svc.GetByID(ctx, "3", "user-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !mine.IsSaved {
		t.Fatal("saver must see isSaved=true")
	}

	anon, err := svc.GetByID(ctx, "3", "")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if anon.IsSaved {
		t.Fatal("anonymous viewer must see isSaved=false")
	}

	if _, err := svc.GetByID(ctx, "no-such-job", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown job: got %v, want ErrNotFound", err)
	}
}

func TestJobListByCompanyID(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()

	jobs, err := svc.ListByCompanyID(ctx, "3", "")
	if err != nil {
		t.Fatalf("ListByCompanyID failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("company 3 has %d postings, want 2", len(jobs))
	}
	for _, job := range jobs {
		if job.CompanyID != "3" {
			t.Fatalf("job %s belongs to company %s", job.ID, job.CompanyID)
		}
	}

	if _, err := svc.ListByCompanyID(ctx, "no-such-company", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown company: got %v, want ErrNotFound", err)
	}
}
