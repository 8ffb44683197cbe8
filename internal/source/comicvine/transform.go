package comicvine

import "comicvault/internal/domain"

func toCharacters(in []Character) []domain.Character {
	out := make([]domain.Character, 0, len(in))
	for _, c := range in {
		out = append(out, toCharacter(c))
	}
	return out
}

func toCharacter(c Character) domain.Character {
	return domain.Character{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Deck:            c.Deck,
		Aliases:         c.Aliases,
		RealName:        c.RealName,
		Image:           c.Image,
		IssueCount:      c.CountOfIssueAppearances,
		APIDetailURL:    c.APIDetailURL,
		SiteDetailURL:   c.SiteDetailURL,
		DateAdded:       c.DateAdded,
		DateLastUpdated: c.DateLastUpdated,
		Enemies:         toReferences(c.CharacterEnemies),
		Friends:         toReferences(c.CharacterFriends),
		Powers:          toReferences(c.Powers),
		Teams:           toReferences(c.Teams),
		IssueCredits:    toReferences(c.IssueCredits),
		VolumeCredits:   toReferences(c.VolumeCredits),
	}
}

func toIssues(in []Issue) []domain.Issue {
	out := make([]domain.Issue, 0, len(in))
	for _, i := range in {
		out = append(out, toIssue(i))
	}
	return out
}

func toIssue(i Issue) domain.Issue {
	issue := domain.Issue{
		ID:              i.ID,
		Name:            i.Name,
		IssueNumber:     i.IssueNumber,
		Description:     i.Description,
		Deck:            i.Deck,
		Image:           i.Image,
		CoverDate:       nonEmpty(i.CoverDate),
		StoreDate:       nonEmpty(i.StoreDate),
		APIDetailURL:    i.APIDetailURL,
		SiteDetailURL:   i.SiteDetailURL,
		DateAdded:       i.DateAdded,
		DateLastUpdated: i.DateLastUpdated,
	}
	if i.Volume != nil {
		ref := toReference(*i.Volume)
		issue.Volume = &ref
	}
	return issue
}

func toReferences(in []APIReference) []domain.Reference {
	if in == nil {
		return nil
	}
	out := make([]domain.Reference, 0, len(in))
	for _, r := range in {
		out = append(out, toReference(r))
	}
	return out
}

func toReference(r APIReference) domain.Reference {
	ref := domain.Reference{
		ID:            r.ID,
		APIDetailURL:  r.APIDetailURL,
		SiteDetailURL: r.SiteDetailURL,
	}
	if r.Name != nil {
		ref.Name = *r.Name
	}
	return ref
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
