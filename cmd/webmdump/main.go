// Command webmdump is the reference driver for the webmdemux library: it
// opens a Matroska/WebM file, prints a digest of its segment and track
// metadata, and optionally walks every packet to report a payload hash.
// It exists the way the teacher's example/extracter does — as the
// library's own exercise harness, not a general-purpose tool.
package main

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrebraga/webmdemux"
	"github.com/andrebraga/webmdemux/ebml"
)

var (
	flagTrackFilter int
	flagResumable   bool
	flagHashPayload bool
)

func main() {
	root := &cobra.Command{
		Use:   "webmdump <file>",
		Short: "Dump segment, track, and packet metadata from a WebM/Matroska file",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().IntVarP(&flagTrackFilter, "track", "l", -1, "only report packets for this track number (-1 for all)")
	root.Flags().BoolVarP(&flagResumable, "resumable", "r", false, "simulate a growing file via a soft-EOS cutoff that grows by 4096 bytes each time parsing reaches it")
	root.Flags().BoolVarP(&flagHashPayload, "hash", "z", false, "print a running SHA-1 of packet payloads instead of per-packet lines")

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("webmdump failed")
	}
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var src ebml.ByteSource
	base := ebml.NewSource(f, 0)
	var fake *ebml.FakeEOSSource
	if flagResumable {
		fake = ebml.NewFakeEOSSource(base)
		fake.SetCutoff(4096)
		src = fake
	} else {
		src = base
	}

	reader := webmdemux.NewReader(src)
	if err := initResumable(reader, fake); err != nil {
		return err
	}

	meta := reader.Meta()
	fmt.Printf("segment: title=%q muxing_app=%q writing_app=%q timescale=%d\n",
		meta.Title, meta.MuxingApp, meta.WritingApp, meta.TimestampScale)
	fmt.Printf("tracks: %d\n", reader.TrackCount())
	for i := 0; i < reader.TrackCount(); i++ {
		t, err := reader.Track(i)
		if err != nil {
			return err
		}
		fmt.Printf("  [%d] number=%d type=%d codec=%s lacing=%v\n", i, t.Number, t.Type, t.CodecID, t.Lacing)
	}
	fmt.Printf("cues: %d\n", reader.CueCount())
	fmt.Printf("chapters: %d tags: %d attachments: %d\n", reader.ChapterCount(), reader.TagCount(), reader.AttachmentCount())

	hasher := sha1.New()
	count := 0
	for {
		p, err := readPacketResumable(reader, fake)
		if err != nil {
			if isAbsent(err) {
				break
			}
			return err
		}
		if flagTrackFilter >= 0 && p.Track != uint64(flagTrackFilter) {
			continue
		}
		count++
		if flagHashPayload {
			hasher.Write(p.Data)
			continue
		}
		log.Info().Uint64("track", p.Track).Int64("ts", p.Timestamp).Bool("keyframe", p.Keyframe).Msg("packet")
	}
	fmt.Printf("packets: %d\n", count)
	if flagHashPayload {
		fmt.Printf("payload sha1: %s\n", hex.EncodeToString(hasher.Sum(nil)))
	}
	return nil
}

// initResumable calls Init, retrying through soft end-of-stream by
// extending the fake cutoff, the way a caller streaming a growing file
// would retry after more bytes arrive.
func initResumable(r *webmdemux.Reader, fake *ebml.FakeEOSSource) error {
	for {
		err := r.Init()
		if err == nil {
			return nil
		}
		if fake == nil || !isSoftEos(err) {
			return err
		}
		fake.Extend(4096)
	}
}

func readPacketResumable(r *webmdemux.Reader, fake *ebml.FakeEOSSource) (*webmdemux.Packet, error) {
	for {
		p, err := r.ReadPacket()
		if err == nil {
			return p, nil
		}
		if fake == nil || !isSoftEos(err) {
			return nil, err
		}
		fake.Extend(4096)
	}
}

func isSoftEos(err error) bool {
	var pe *webmdemux.ParseError
	return errors.As(err, &pe) && pe.Kind == webmdemux.SoftEos
}

func isAbsent(err error) bool {
	var pe *webmdemux.ParseError
	return errors.As(err, &pe) && pe.Kind == webmdemux.Absent
}
