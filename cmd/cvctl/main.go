// cvctl is a small admin console for the CV API. Reads work without
// credentials; mutations need a token from `cvctl login` passed via
// -token or the CV_API_TOKEN environment variable.
//
// Usage:
//
//	cvctl [-api URL] [-token TOKEN] <command> [args]
//
//	login -email EMAIL -password PASSWORD
//	site
//	profile get|set|delete [-data JSON]
//	experience|projects|skills|tech-stack|references \
//	    list | get ID | create -data JSON [-list field=a,b,c] |
//	    update ID -data JSON [-list field=a,b,c] | delete ID [-yes]
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/JRamonda/my-cv/pkg/client"
)

func main() {
	api := flag.String("api", envOr("CV_API_URL", "http://localhost:3001"), "API base URL")
	token := flag.String("token", os.Getenv("CV_API_TOKEN"), "bearer token for mutations")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c := client.New(*api, client.WithToken(*token))
	ctx := context.Background()

	var err error
	switch cmd := args[0]; cmd {
	case "login":
		err = runLogin(ctx, c, args[1:])
	case "site":
		err = runSite(ctx, c)
	case "profile":
		err = runProfile(ctx, c, args[1:])
	case "experience", "projects", "skills", "tech-stack", "references":
		err = runResource(ctx, c, cmd, args[1:])
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "cvctl:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runLogin(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	auth, err := c.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", auth.User.Email)
	fmt.Printf("export CV_API_TOKEN=%s\n", auth.AccessToken)
	return nil
}

func runSite(ctx context.Context, c *client.Client) error {
	site, err := c.FetchSite(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s - %s\n", site.Profile.Name, site.Profile.Title)
	fmt.Printf("experiences: %d\n", len(site.Experiences))
	fmt.Printf("projects:    %d\n", len(site.Projects))
	fmt.Printf("skills:      %d\n", len(site.Skills))
	fmt.Printf("tech stack:  %d\n", len(site.TechStack))
	fmt.Printf("references:  %d\n", len(site.References))

	var preferred []string
	for _, t := range site.TechStack {
		if t.Preferred {
			preferred = append(preferred, t.Name)
		}
	}
	if len(preferred) > 0 {
		fmt.Printf("preferred:   %s\n", client.JoinList(preferred))
	}
	return nil
}

func runProfile(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("profile requires a verb: get, set or delete")
	}
	verb, rest := args[0], args[1:]
	svc := c.Profile()

	switch verb {
	case "get":
		p, err := svc.Get(ctx)
		if err != nil {
			return err
		}
		return printJSON(p)
	case "set":
		data, err := parseData(verb, rest)
		if err != nil {
			return err
		}
		p, err := svc.Update(ctx, data)
		if err != nil {
			return err
		}
		return printJSON(p)
	case "delete":
		if !confirm("Delete the profile?") {
			return nil
		}
		p, err := svc.Delete(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted profile %s\n", p.Name)
		return nil
	default:
		return fmt.Errorf("unknown profile verb %q", verb)
	}
}

// runResource dispatches the five standard verbs for a list resource.
// All five resources share the same JSON-payload interface, so there
// is nothing resource-specific here beyond the path.
func runResource(ctx context.Context, c *client.Client, name string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires a verb: list, get, create, update or delete", name)
	}
	verb, rest := args[0], args[1:]

	switch verb {
	case "list":
		return printJSON(mustList(ctx, c, name))
	case "get":
		if len(rest) < 1 {
			return fmt.Errorf("%s get requires an id", name)
		}
		out, err := doResource(ctx, c, name, "get", rest[0], nil)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "create":
		data, err := parseData(verb, rest)
		if err != nil {
			return err
		}
		out, err := doResource(ctx, c, name, "create", "", data)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "update":
		if len(rest) < 1 {
			return fmt.Errorf("%s update requires an id", name)
		}
		data, err := parseData(verb, rest[1:])
		if err != nil {
			return err
		}
		out, err := doResource(ctx, c, name, "update", rest[0], data)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		yes := fs.Bool("yes", false, "skip confirmation")
		var id string
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			id, rest = rest[0], rest[1:]
		}
		fs.Parse(rest)
		if id == "" {
			return fmt.Errorf("%s delete requires an id", name)
		}
		if !*yes && !confirm(fmt.Sprintf("Delete %s %s?", name, id)) {
			return nil
		}
		out, err := doResource(ctx, c, name, "delete", id, nil)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", id)
		return printJSON(out)
	default:
		return fmt.Errorf("unknown verb %q", verb)
	}
}

func mustList(ctx context.Context, c *client.Client, name string) any {
	out, err := doResource(ctx, c, name, "list", "", nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cvctl:", err)
		os.Exit(1)
	}
	return out
}

// doResource funnels every resource through its typed service so the
// output keeps the proper field set per resource.
func doResource(ctx context.Context, c *client.Client, name, verb, id string, data json.RawMessage) (any, error) {
	switch name {
	case "experience":
		return apply(ctx, c.Experiences(), verb, id, data)
	case "projects":
		return apply(ctx, c.Projects(), verb, id, data)
	case "skills":
		return apply(ctx, c.Skills(), verb, id, data)
	case "tech-stack":
		return apply(ctx, c.TechStack(), verb, id, data)
	case "references":
		return apply(ctx, c.References(), verb, id, data)
	}
	return nil, fmt.Errorf("unknown resource %q", name)
}

func apply[T any](ctx context.Context, svc client.ResourceService[T], verb, id string, data json.RawMessage) (any, error) {
	switch verb {
	case "list":
		return svc.List(ctx)
	case "get":
		return svc.Get(ctx, id)
	case "create":
		return svc.Create(ctx, data)
	case "update":
		return svc.Update(ctx, id, data)
	case "delete":
		return svc.Delete(ctx, id)
	}
	return nil, fmt.Errorf("unknown verb %q", verb)
}

// listFlags collects repeatable -list field=a,b,c arguments.
type listFlags map[string][]string

func (l listFlags) String() string { return "" }

func (l listFlags) Set(v string) error {
	field, csv, ok := strings.Cut(v, "=")
	if !ok || field == "" {
		return fmt.Errorf("expected field=comma,separated,values, got %q", v)
	}
	l[field] = client.SplitList(csv)
	return nil
}

func parseData(verb string, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet(verb, flag.ExitOnError)
	data := fs.String("data", "", "JSON payload")
	lists := listFlags{}
	fs.Var(lists, "list", "list field as field=comma,separated,values (repeatable)")
	fs.Parse(args)
	if *data == "" && len(lists) == 0 {
		return nil, fmt.Errorf("%s requires -data and/or -list", verb)
	}

	payload := map[string]any{}
	if *data != "" {
		if err := json.Unmarshal([]byte(*data), &payload); err != nil {
			return nil, fmt.Errorf("-data is not a JSON object: %w", err)
		}
	}
	for field, items := range lists {
		payload[field] = items
	}
	return json.Marshal(payload)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func printJSON(v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}
