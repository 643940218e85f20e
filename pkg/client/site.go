package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Site is everything a portfolio page renders, fetched in one call.
type Site struct {
	Profile     *Profile
	Experiences []Experience
	Projects    []Project
	Skills      []Skill
	TechStack   []TechStack
	References  []Reference
}

// FetchSite loads all public resources concurrently. Any failed fetch,
// a missing profile included, fails the whole aggregate and cancels the
// remaining fetches.
func (c *Client) FetchSite(ctx context.Context) (*Site, error) {
	var site Site
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		site.Profile, err = c.Profile().Get(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		site.Experiences, err = c.Experiences().List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		site.Projects, err = c.Projects().List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		site.Skills, err = c.Skills().List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		site.TechStack, err = c.TechStack().List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		site.References, err = c.References().List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &site, nil
}
