package main

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VishnuKaku/workshipai/internal/entity"
	"github.com/VishnuKaku/workshipai/internal/knowledge"
	"github.com/VishnuKaku/workshipai/internal/ocr"
	"github.com/VishnuKaku/workshipai/internal/repository"
	"github.com/VishnuKaku/workshipai/internal/stamp"
)

func newExtractCmd() *cobra.Command {
	var (
		imagePath string
		save      bool
	)
	cmd := &cobra.Command{
		Use:   "extract <page-file>",
		Short: "Extract candidate stamps from an OCR'd page (raw text or annotation JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			pageText, blocks, err := loadPage(args[0], data)
			if err != nil {
				return err
			}

			opts := []stamp.Option{}
			var pageImage image.Image
			if imagePath != "" {
				f, err := os.Open(imagePath)
				if err != nil {
					return err
				}
				pageImage, _, err = image.Decode(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("decode page image: %w", err)
				}
				opts = append(opts, stamp.WithCropper(stamp.NewCropper(cfg.Crop, logger)))
			}

			seg := stamp.NewSegmenter(knowledge.NewRegistry(), logger, opts...)
			candidates := seg.ExtractStamps(pageText, blocks, pageImage)

			for _, c := range candidates {
				fmt.Printf("#%d  %-24s %-40s %-9s %-10s conf=%.2f\n",
					c.Sequence, c.Country, c.Airport, c.Direction, c.Date, c.Confidence)
				if c.StampImage != "" {
					fmt.Printf("    image: %s\n", c.StampImage)
				}
			}
			if len(candidates) == 0 {
				fmt.Println("no candidate stamps found")
			}

			if save && len(candidates) > 0 {
				return saveCandidates(cmd.Context(), candidates)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "page image for stamp cropping")
	cmd.Flags().BoolVar(&save, "save", false, "persist extracted candidates as passport entries")
	return cmd
}

// loadPage accepts either a raw OCR text file or the OCR service's annotation
// JSON, recognized by extension.
func loadPage(path string, data []byte) (string, []ocr.TextBlock, error) {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		page, err := ocr.ParsePage(data)
		if err != nil {
			return "", nil, fmt.Errorf("parse annotations: %w", err)
		}
		text := page.FullText()
		blocks := ocr.SplitBlocks(text)
		attachPolys(blocks, page)
		return text, blocks, nil
	}
	text := string(data)
	return text, ocr.SplitBlocks(text), nil
}

// attachPolys links per-word annotations back to the block whose raw text
// contains them, so the segmenter can crop per candidate.
func attachPolys(blocks []ocr.TextBlock, page ocr.Page) {
	if len(page.Annotations) < 2 {
		return
	}
	for i := range blocks {
		for _, a := range page.Annotations[1:] {
			if a.BoundingPoly != nil && a.Description != "" && strings.Contains(blocks[i].Raw, a.Description) {
				blocks[i].Poly = a.BoundingPoly
				break
			}
		}
	}
}

func saveCandidates(ctx context.Context, candidates []entity.CandidateStamp) error {
	db, err := repository.Open(cfg.Store.Path, logger)
	if err != nil {
		return err
	}
	defer repository.Close(db, logger)

	repo, err := repository.NewEntryRepository(db, logger)
	if err != nil {
		return err
	}
	for _, c := range candidates {
		if err := repo.Save(ctx, entity.FromCandidate(c)); err != nil {
			return err
		}
	}
	logger.Info("saved passport entries", "count", len(candidates))
	return nil
}
