package doctor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"github.com/NathanKolpa/pacup/internal/config"
	"github.com/NathanKolpa/pacup/internal/manifest"
	"github.com/NathanKolpa/pacup/internal/messages"
	"github.com/NathanKolpa/pacup/internal/pacman"
)

var (
	statFunc   = os.Stat
	accessFunc = func(path string) error { return unix.Access(path, unix.X_OK) }
)

// CheckConfig loads the config the same way a sync run does.
// The returned config is nil when loading failed.
func CheckConfig(paths config.Paths) ([]Result, *config.Config) {
	loaded, err := config.Load(paths)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, loaded.Source),
	}}, loaded.Config
}

// CheckBinaries verifies that every binary a sync run may invoke exists and
// is executable. The elevation binary is skipped when running as root. A
// broken AUR helper is only a warning unless every install goes through it.
func CheckBinaries(cfg pacman.Config, elevated bool) []Result {
	binaries := []struct {
		label    string
		key      string
		path     string
		optional bool
	}{
		{label: "pacman", key: "pacman", path: cfg.Binary},
		{label: "AUR helper", key: "aur_helper", path: cfg.AURBinary, optional: !cfg.DefaultToAUR},
		{label: "sudo", key: "sudo", path: cfg.SudoBinary},
	}

	results := make([]Result, 0, len(binaries))
	for _, b := range binaries {
		if b.key == "sudo" && (elevated || cfg.DefaultToAUR) {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameBinary,
				Message:   fmt.Sprintf(messages.DoctorBinarySkippedFmt, b.label),
			})
			continue
		}

		failure := StatusFail
		if b.optional {
			failure = StatusWarn
		}

		info, err := statFunc(b.path)
		if err != nil {
			results = append(results, Result{
				Status:         failure,
				CheckName:      messages.DoctorCheckNameBinary,
				Message:        fmt.Sprintf(messages.DoctorBinaryMissingFmt, b.label, b.path),
				Recommendation: fmt.Sprintf(messages.DoctorBinaryMissingRecommendFmt, b.label, b.key),
			})
			continue
		}
		if info.IsDir() || accessFunc(b.path) != nil {
			results = append(results, Result{
				Status:         failure,
				CheckName:      messages.DoctorCheckNameBinary,
				Message:        fmt.Sprintf(messages.DoctorBinaryNotExecFmt, b.label, b.path),
				Recommendation: messages.DoctorBinaryNotExecRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameBinary,
			Message:   fmt.Sprintf(messages.DoctorBinaryOKFmt, b.label, b.path),
		})
	}
	return results
}

// CheckManifest locates the packagelist (unless path is set) and parses it
// completely, reporting the record count or the first error.
func CheckManifest(loc manifest.Locator, path string) []Result {
	if path == "" {
		found, err := loc.Find()
		if err != nil {
			result := Result{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameManifest,
				Message:   err.Error(),
			}
			if errors.Is(err, manifest.ErrNotFound) {
				result.Recommendation = messages.DoctorManifestMissingRecommend
			}
			return []Result{result}
		}
		path = found
	}

	file, err := manifest.Open(path)
	if err != nil {
		result := Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   err.Error(),
		}
		if errors.Is(err, fs.ErrNotExist) {
			result.Recommendation = messages.DoctorManifestMissingRecommend
		}
		return []Result{result}
	}
	defer func() { _ = file.Close() }()

	count, err := countRecords(manifest.NewReader(file))
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestInvalidFmt, path, err),
			Recommendation: messages.DoctorManifestInvalidRecommend,
		}}
	}

	noun := messages.SyncPackagePlural
	if count == 1 {
		noun = messages.SyncPackageSingular
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestOKFmt, path, count, noun),
	}}
}

func countRecords(r *manifest.Reader) (int, error) {
	count := 0
	for {
		_, err := r.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		count++
	}
}
