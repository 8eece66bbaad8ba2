package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rudrodip/ytranscript/pkg/yt_transcript"
	"github.com/rudrodip/ytranscript/pkg/yt_transcript_errors"
	"github.com/rudrodip/ytranscript/pkg/yt_transcript_formatters"
	"github.com/rudrodip/ytranscript/pkg/yt_transcript_models"
)

func main() {
	var (
		lang               = flag.String("lang", "", "Language code for the transcript (default: first available track)")
		formatter          = flag.String("formatter", "json", "Formatter to use (json, text)")
		with_timestamps    = flag.Bool("with_timestamps", true, "Include timestamps")
		with_language_code = flag.Bool("with_language_code", true, "Include language code")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Please provide a video ID or URL")
		os.Exit(1)
	}

	var outputFormatter yt_transcript_formatters.Formatter

	if *formatter == "text" {
		outputFormatter = yt_transcript_formatters.NewTextFormatter(
			yt_transcript_formatters.WithTimestamps(*with_timestamps),
			yt_transcript_formatters.WithLanguageCode(*with_language_code),
		)
	} else {
		outputFormatter = yt_transcript_formatters.NewJSONFormatter(
			yt_transcript_formatters.WithTimestamps(*with_timestamps),
			yt_transcript_formatters.WithLanguageCode(*with_language_code),
		)
	}

	client := yt_transcript.NewClient(
		yt_transcript.WithFormatter(outputFormatter),
	)

	var config *yt_transcript_models.TranscriptConfig
	if *lang != "" {
		config = &yt_transcript_models.TranscriptConfig{Lang: *lang}
	}

	t, err := client.GetFormattedTranscript(flag.Arg(0), config)

	if err != nil {
		var langErr *yt_transcript_errors.TranscriptNotAvailableLanguageError
		if errors.As(err, &langErr) {
			fmt.Printf("Error: %v\n", err)
			fmt.Printf("Try again with -lang set to one of: %s\n", strings.Join(langErr.AvailableLangs, ", "))
			os.Exit(1)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s", t)
	os.Exit(0)
}
