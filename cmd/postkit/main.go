// postkit — Social media graphics pipeline for Le Middle.
//
// Usage:
//
//	postkit generate [--id <id>] [--status draft] [--type number] [options]
//	postkit preview --id <id>
//	postkit publish --id <id> [--force]
//	postkit list [--status <s>] [--type <t>]
//	postkit status
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lemiddle/postkit/pkg/content"
	"github.com/lemiddle/postkit/pkg/render"
	"github.com/lemiddle/postkit/pkg/services"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	case "publish":
		err = runPublish(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "status":
		err = runStatus()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fatal(err)
	}
}

// commonFlags are shared by the subcommands that touch the store.
type commonFlags struct {
	contentPath string
	assetsDir   string
	outDir      string
}

func addCommonFlags(fs *flag.FlagSet, c *commonFlags) {
	fs.StringVar(&c.contentPath, "content", "data/posts.json", "Path to posts.json")
	fs.StringVar(&c.assetsDir, "assets", "assets", "Asset directory (fonts/, logo/)")
	fs.StringVar(&c.outDir, "out", "generated", "Output directory for rendered images")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		common   commonFlags
		id       string
		status   string
		postType string
		canvas   string
	)
	addCommonFlags(fs, &common)
	fs.StringVar(&id, "id", "", "Generate a single post by id")
	fs.StringVar(&status, "status", content.StatusDraft, "Generate all posts with this status")
	fs.StringVar(&postType, "type", "", "Restrict to one post type")
	fs.StringVar(&canvas, "canvas", "portrait", "Canvas preset: portrait or square")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, warnings, err := content.Load(common.contentPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	var posts []*content.Post
	if id != "" {
		post, ok := store.ByID(id)
		if !ok {
			return fmt.Errorf("no post with id %q", id)
		}
		posts = []*content.Post{post}
	} else {
		posts = store.Filter(status, postType)
	}
	if len(posts) == 0 {
		fmt.Println("Nothing to generate.")
		return nil
	}

	if err := os.MkdirAll(common.outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cfg := render.NewConfig(common.assetsDir, canvas)
	fonts := render.NewFontCache(cfg.FontsDir())

	// One failed post never stops the batch: log it and move on.
	generated := 0
	for _, post := range posts {
		if err := generatePost(post, cfg, fonts, common.outDir); err != nil {
			fmt.Printf("Warning: post %s failed: %v\n", post.ID, err)
			continue
		}
		generated++
		fmt.Printf("Generated %s -> %s\n", post.ID, post.GeneratedImage)
	}

	if generated > 0 {
		if err := store.Save(); err != nil {
			return err
		}
	}
	fmt.Printf("Done: %d/%d posts generated.\n", generated, len(posts))
	return nil
}

func generatePost(post *content.Post, cfg render.Config, fonts *render.FontCache, outDir string) error {
	composer, err := render.ForType(post.Type, cfg, fonts)
	if err != nil {
		return err
	}

	img, err := composer.Compose(render.Record(post.Content))
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, post.ID+".png")
	if err := render.SavePNG(img, outPath); err != nil {
		return err
	}

	post.GeneratedImage = outPath
	post.Status = content.StatusGenerated
	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var common commonFlags
	var id string
	addCommonFlags(fs, &common)
	fs.StringVar(&id, "id", "", "Post id to preview")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("preview requires --id")
	}

	store, _, err := content.Load(common.contentPath)
	if err != nil {
		return err
	}
	post, ok := store.ByID(id)
	if !ok {
		return fmt.Errorf("no post with id %q", id)
	}

	fmt.Printf("Post %s (%s) — %s\n\n", post.ID, post.Type, post.Status)
	fmt.Println("Caption:")
	fmt.Println(content.FormatCaption(post.Caption))
	if post.GeneratedImage != "" {
		fmt.Printf("\nImage: %s\n", post.GeneratedImage)
	} else {
		fmt.Println("\nNot generated yet. Run 'postkit generate --id' first.")
	}
	return nil
}

func runPublish(args []string) error {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	var common commonFlags
	var id string
	var force bool
	addCommonFlags(fs, &common)
	fs.StringVar(&id, "id", "", "Post id to publish")
	fs.BoolVar(&force, "force", false, "Republish an already published post")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("publish requires --id")
	}

	store, _, err := content.Load(common.contentPath)
	if err != nil {
		return err
	}
	post, ok := store.ByID(id)
	if !ok {
		return fmt.Errorf("no post with id %q", id)
	}
	if post.Status == content.StatusPublished && !force {
		return fmt.Errorf("post %s is already published (use --force to republish)", id)
	}
	if post.GeneratedImage == "" {
		return fmt.Errorf("post %s has no generated image; run 'postkit generate --id %s' first", id, id)
	}

	svcCfg := services.LoadConfig()
	ctx := context.Background()

	fmt.Println("Uploading image...")
	uploader := services.NewUploader(svcCfg)
	imageURL, err := uploader.Upload(ctx, post.GeneratedImage, post.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Image hosted at %s\n", imageURL)

	fmt.Println("Publishing...")
	publisher := services.NewPublisher(svcCfg)
	result, err := publisher.Publish(ctx, imageURL, content.FormatCaption(post.Caption))
	if err != nil {
		return err
	}
	if result.Status != "published" {
		return fmt.Errorf("publication ended with status %q (container %s)", result.Status, result.ContainerID)
	}

	post.Status = content.StatusPublished
	fmt.Printf("Published! Media id: %s\n", result.MediaID)
	return store.Save()
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var common commonFlags
	var status, postType string
	addCommonFlags(fs, &common)
	fs.StringVar(&status, "status", "", "Filter by status")
	fs.StringVar(&postType, "type", "", "Filter by type")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, _, err := content.Load(common.contentPath)
	if err != nil {
		return err
	}

	posts := store.Filter(status, postType)
	if len(posts) == 0 {
		fmt.Println("No posts.")
		return nil
	}
	for _, p := range posts {
		fmt.Printf("%-16s %-8s %-10s %s\n", p.ID, p.Type, p.Status, p.Caption.Main)
	}
	return nil
}

func runStatus() error {
	cfg := services.LoadConfig()
	fmt.Println("Service configuration:")
	for name, ok := range cfg.Validate() {
		state := "missing credentials"
		if ok {
			state = "ready"
		}
		fmt.Printf("  %-12s %s\n", name, state)
	}
	return nil
}

func printUsage() {
	fmt.Println(`postkit — social media graphics pipeline

Commands:
  generate   Render pending posts to PNG
  preview    Show a post's caption and image path
  publish    Upload and publish a generated post
  list       List posts
  status     Show service configuration

Common flags:
  --content  Path to posts.json (default data/posts.json)
  --assets   Asset directory containing fonts/ and logo/ (default assets)
  --out      Output directory (default generated)

Run 'postkit <command> -h' for command flags.`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
