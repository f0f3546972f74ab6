// Package seed populates the service and blogpost collections with default
// marketing content when they are empty. Seeding is best-effort: it must
// never fail or delay startup, and it never touches a collection that
// already has data.
package seed

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nikhilcs/cs-portfolio-api/internal/models"
)

// Store is the subset of the document store the seeder needs.
type Store interface {
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]map[string]any, error)
}

// Run seeds each managed collection independently. There is no locking:
// two instances starting at once can both seed and produce duplicates,
// which is accepted.
func Run(ctx context.Context, store Store) {
	seedCollection(ctx, store, "service", serviceDocs())
	seedCollection(ctx, store, "blogpost", blogDocs())
}

func seedCollection(ctx context.Context, store Store, collection string, docs []any) {
	existing, err := store.GetDocuments(ctx, collection, bson.M{}, 1)
	if err != nil {
		// Store unreachable; skip quietly, startup must not care.
		return
	}
	if len(existing) > 0 {
		return
	}

	inserted := 0
	for _, doc := range docs {
		if _, err := store.CreateDocument(ctx, collection, doc); err != nil {
			continue
		}
		inserted++
	}
	log.Printf("seeded %d default documents into %s", inserted, collection)
}

func serviceDocs() []any {
	docs := make([]any, len(defaultServices))
	for i := range defaultServices {
		docs[i] = defaultServices[i]
	}
	return docs
}

func blogDocs() []any {
	docs := make([]any, len(defaultBlogPosts))
	for i := range defaultBlogPosts {
		docs[i] = defaultBlogPosts[i]
	}
	return docs
}

func price(v float64) *float64 { return &v }

var defaultServices = []models.Service{
	{Title: "Company Incorporation (Pvt Ltd/LLP)", Summary: "End-to-end incorporation with DIN, DSC, name approval, MOA/AOA, PAN & TAN.", Icon: "building2", StartingPrice: price(8999), Tags: []string{"startup", "roc", "mca"}},
	{Title: "Annual ROC Filings", Summary: "AOC-4, MGT-7, board reports, AGM documentation and compliance calendar.", Icon: "file-text", StartingPrice: price(4999), Tags: []string{"roc", "compliance"}},
	{Title: "Director KYC (DIR-3 KYC)", Summary: "KYC for directors with DSC assistance and filing.", Icon: "id-card", StartingPrice: price(999), Tags: []string{"dir-3", "kyc"}},
	{Title: "GST Registration & Returns", Summary: "GSTIN registration, monthly/quarterly returns and advisory.", Icon: "receipt", StartingPrice: price(1499), Tags: []string{"gst", "tax"}},
	{Title: "Share Allotment & Transfer", Summary: "PAS-3, SH-7, share certificates issue/transfer and register maintenance.", Icon: "layers", StartingPrice: price(3499), Tags: []string{"secretarial", "shares"}},
	{Title: "Secretarial Audit & Compliance", Summary: "Event-based filings, board/GM minutes, registers and due diligence.", Icon: "shield-check", StartingPrice: price(6999), Tags: []string{"audit", "secretarial"}},
	{Title: "MSME/Udyam Registration", Summary: "Register your enterprise under Udyam for government benefits.", Icon: "badge-check", StartingPrice: price(799), Tags: []string{"msme", "udyam"}},
	{Title: "Trademark Filing (Partner Network)", Summary: "Facilitated TM search and filing through trusted IP partners.", Icon: "copyright", StartingPrice: price(2999), Tags: []string{"ip", "brand"}},
	{Title: "ESOP/Cap Table Advisory", Summary: "Design ESOP policies, grants and basic cap table setup.", Icon: "pie-chart", StartingPrice: price(5999), Tags: []string{"esop", "advisory"}},
	{Title: "FEMA/FDI Compliance", Summary: "FC-GPR/FC-TRS filings, share pricing and RBI compliance.", Icon: "globe", StartingPrice: price(9999), Tags: []string{"fema", "fdi"}},
}

var defaultBlogPosts = []models.BlogPost{
	{
		Title:   "ROC Annual Filing Checklist for Private Companies (FY 2024-25)",
		Slug:    "roc-annual-filing-checklist-2024-25",
		Excerpt: "A concise checklist to complete AOC-4, MGT-7 and key board approvals on time.",
		Content: "Step-by-step guide covering financial statements, board report, auditor report, AOC-4, MGT-7/7A, due dates and penalties.",
		Author:  "Admin",
		Tags:    []string{"roc", "checklist", "private-company"},
	},
	{
		Title:   "DIR-3 KYC: Due Dates, Forms and Penalties",
		Slug:    "dir-3-kyc-due-dates-forms",
		Excerpt: "Everything about Director KYC and how to avoid deactivation.",
		Content: "Who needs to file DIR-3 KYC, documents required, e-Form vs Web KYC, timelines and fees.",
		Author:  "Admin",
		Tags:    []string{"dir-3", "kyc"},
	},
	{
		Title:   "Incorporation: Pvt Ltd vs LLP in India",
		Slug:    "incorporation-pvtltd-vs-llp",
		Excerpt: "Structure, compliance and taxation comparison to choose the right entity.",
		Content: "We cover partner liability, compliance burden, funding readiness and exit scenarios.",
		Author:  "Admin",
		Tags:    []string{"incorporation", "llp", "pvtltd"},
	},
}
