// Package catalog provides the trusted, static set of NIST SP 800 series
// publications the digest is built from. Records are verified against the
// official CSRC listings; the generation and validation steps both treat
// this table as the source of truth for dates, titles, and URLs.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// publications is the full source catalog, including entries that are
// fetched for context but must never be cited in a generated report.
var publications = []types.Publication{
	{
		ID:      "800-218A",
		Title:   "NIST SP 800-218A: Secure Software Development Framework (SSDF) Community Profile for Generative AI",
		URL:     "https://csrc.nist.gov/pubs/sp/800/218/a/final",
		Date:    "2024-07-26",
		Version: "Final",
	},
	{
		ID:      "800-171r3",
		Title:   "NIST SP 800-171 Rev. 3: Protecting Controlled Unclassified Information in Nonfederal Systems and Organizations",
		URL:     "https://csrc.nist.gov/pubs/sp/800/171/r3/final",
		Date:    "2024-05-15",
		Version: "Rev. 3",
	},
	{
		ID:      "csf-2.0",
		Title:   "NIST Cybersecurity Framework 2.0",
		URL:     "https://csrc.nist.gov/pubs/sp/800/221/final",
		Date:    "2024-02-26",
		Version: "2.0",
	},
	{
		ID:      "800-204D",
		Title:   "NIST SP 800-204D: Strategies for the Integration of Software Supply Chain Security in DevSecOps CI/CD Pipelines",
		URL:     "https://csrc.nist.gov/pubs/sp/800/204/d/final",
		Date:    "2024-02-01",
		Version: "Final",
	},
	{
		ID:      "800-218",
		Title:   "NIST SP 800-218: Secure Software Development Framework (SSDF) Version 1.1",
		URL:     "https://csrc.nist.gov/pubs/sp/800/218/final",
		Date:    "2022-02-04",
		Version: "v1.1",
	},
	{
		ID:      "800-215",
		Title:   "NIST SP 800-215: Guide to a Secure Enterprise Network Landscape",
		URL:     "https://csrc.nist.gov/pubs/sp/800/215/final",
		Date:    "2022-11-17",
		Version: "Final",
	},
	{
		ID:      "800-161r1",
		Title:   "NIST SP 800-161 Rev. 1: Cybersecurity Supply Chain Risk Management Practices for Systems and Organizations",
		URL:     "https://csrc.nist.gov/pubs/sp/800/161/r1/final",
		Date:    "2022-05-13",
		Version: "Rev. 1",
		Errata:  "2024-11-01",
	},
	{
		ID:      "800-53r5",
		Title:   "NIST SP 800-53 Rev. 5: Security and Privacy Controls for Information Systems and Organizations",
		URL:     "https://csrc.nist.gov/pubs/sp/800/53/r5/final",
		Date:    "2020-09-23",
		Version: "Rev. 5",
	},
	{
		ID:      "800-210",
		Title:   "NIST SP 800-210: General Access Control Guidance for Cloud Systems",
		URL:     "https://csrc.nist.gov/pubs/sp/800/210/final",
		Date:    "2020-07-31",
		Version: "Final",
	},
	{
		ID:      "800-190",
		Title:   "NIST SP 800-190: Application Container Security Guide",
		URL:     "https://csrc.nist.gov/pubs/sp/800/190/final",
		Date:    "2017-09-01",
		Version: "Final",
	},
}

// invalidIDs are identifiers that must never appear in a generated
// report. 800-204C is a common model confusion for 800-204D; 800-210 is
// cloud access control, out of scope for development-focused digests.
var invalidIDs = []string{
	"800-204C",
	"800-210",
}

// keyIDs are the publications every digest must mention.
var keyIDs = []string{
	"800-218A",
	"800-218",
	"800-171",
	"800-204D",
}

var byID map[string]*types.Publication

func init() {
	validate := validator.New()
	byID = make(map[string]*types.Publication, len(publications))
	for i := range publications {
		pub := &publications[i]
		if err := validate.Struct(pub); err != nil {
			panic(fmt.Sprintf("catalog: invalid record %q: %v", pub.ID, err))
		}
		if _, dup := byID[pub.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate record %q", pub.ID))
		}
		byID[pub.ID] = pub
	}
}

// All returns a copy of the source catalog sorted by publication date,
// most recent first.
func All() []types.Publication {
	pubs := make([]types.Publication, len(publications))
	copy(pubs, publications)
	sort.SliceStable(pubs, func(i, j int) bool {
		return pubs[i].Date > pubs[j].Date
	})
	return pubs
}

// Lookup returns the catalog record for an identifier.
func Lookup(id string) (types.Publication, bool) {
	pub, ok := byID[id]
	if !ok {
		return types.Publication{}, false
	}
	return *pub, true
}

// Verified returns the records whose dates and titles a report is
// checked against. Known-invalid identifiers are excluded.
func Verified() []types.Publication {
	invalid := make(map[string]bool, len(invalidIDs))
	for _, id := range invalidIDs {
		invalid[id] = true
	}

	var verified []types.Publication
	for _, pub := range publications {
		if !invalid[pub.ID] {
			verified = append(verified, pub)
		}
	}
	return verified
}

// InvalidIDs returns identifiers that must never appear in a report.
func InvalidIDs() []string {
	ids := make([]string, len(invalidIDs))
	copy(ids, invalidIDs)
	return ids
}

// KeyIDs returns the identifiers every report must mention.
func KeyIDs() []string {
	ids := make([]string, len(keyIDs))
	copy(ids, keyIDs)
	return ids
}

// Ref exposes the catalog through value-type methods so callers that
// accept a reference-table interface can be handed the real table.
type Ref struct{}

// Verified returns the verified records.
func (Ref) Verified() []types.Publication { return Verified() }

// InvalidIDs returns identifiers that must never appear in a report.
func (Ref) InvalidIDs() []string { return InvalidIDs() }

// KeyIDs returns the identifiers every report must mention.
func (Ref) KeyIDs() []string { return KeyIDs() }

// ReferenceGuide renders the verified catalog as a prompt-ready bullet
// list of identifiers, titles, dates, and URLs.
func ReferenceGuide() string {
	var sb strings.Builder
	for _, pub := range Verified() {
		sb.WriteString(fmt.Sprintf("- %s: %s (%s) - %s\n", pub.ID, pub.Title, pub.Date, pub.URL))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
