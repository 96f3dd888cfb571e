package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/zbiljic/gitexec"

	"github.com/zbiljic/jskit/pkg/release"
)

var (
	filesToExclude = []string{
		"*.lock*", // yarn.lock, Gemfile.lock, etc.
		"package-lock.json",
		"pnpm-lock.yaml",
		"npm-shrinkwrap.json",
	}

	excludeFromDiff = slice.FlatMap(filesToExclude, func(i int, s string) []string {
		return []string{":(exclude)" + s}
	})
)

// historyFormat prints hash, decorations and subject separated by NUL.
const historyFormat = "%H%x00%D%x00%s"

const commitEditMsg = "COMMIT_EDITMSG"

func gitWorkingTreeDir(path string) (string, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return string(out), err
	}

	return strings.TrimSpace(string(out)), nil
}

// gitCommitMessageFile returns the path of the message of the commit in
// progress. Git resolves it, since .git is a file in linked worktrees and
// submodules.
func gitCommitMessageFile(workDir string) string {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir: workDir,
		Arg:    []string{"--git-path", commitEditMsg},
	})
	if err != nil {
		return filepath.Join(workDir, ".git", commitEditMsg)
	}

	return resolveGitPath(workDir, string(out))
}

// resolveGitPath makes rev-parse --git-path output, which is relative to the
// directory git ran in, absolute.
func resolveGitPath(workDir, out string) string {
	path := strings.TrimSpace(out)
	if path == "" {
		return filepath.Join(workDir, ".git", commitEditMsg)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	return path
}

func gitDiffStaged(path string) ([]string, string, error) {
	out, err := gitexec.Diff(&gitexec.DiffOptions{
		CmdDir:   path,
		Cached:   true,
		Minimal:  true,
		NameOnly: true,
		Path:     excludeFromDiff,
	})
	if err != nil {
		return []string{}, "", err
	}

	outString := strings.TrimSpace(string(out))
	if outString == "" {
		return []string{}, "", nil
	}

	files := strings.Split(outString, "\n")

	out, err = gitexec.Diff(&gitexec.DiffOptions{
		CmdDir:  path,
		Cached:  true,
		Minimal: true,
		Path:    excludeFromDiff,
	})
	if err != nil {
		return []string{}, "", err
	}

	diff := strings.TrimSpace(string(out))

	return files, diff, nil
}

// gitHistory is the history since the last release tag.
type gitHistory struct {
	Commits []release.HistoryCommit
	// Tag is the last release tag, empty when none was found.
	Tag     string
	Version *semver.Version
}

// gitHistorySinceLastTag returns the commits reachable from HEAD, newest
// first, up to the first commit tagged with a version.
func gitHistorySinceLastTag(workDir string) (*gitHistory, error) {
	out, err := gitexec.Log(&gitexec.LogOptions{
		CmdDir: workDir,
		Format: historyFormat,
	})
	if err != nil {
		// a repository without commits has no history
		if strings.Contains(string(out), "does not have any commits") {
			return &gitHistory{}, nil
		}
		return nil, err
	}

	return parseHistory(string(out))
}

// parseHistory parses log output in historyFormat.
func parseHistory(out string) (*gitHistory, error) {
	h := &gitHistory{}

	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "\x00", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("unexpected log line: %q", line)
		}
		hash, decorations, subject := fields[0], fields[1], fields[2]

		if tag, version := versionTag(decorations); version != nil {
			h.Tag, h.Version = tag, version
			break
		}

		h.Commits = append(h.Commits, release.HistoryCommit{
			Hash:    hash,
			Subject: subject,
		})
	}

	return h, nil
}

// versionTag returns the highest version tag among ref decorations such as
// "HEAD -> master, tag: v1.2.0, origin/master".
func versionTag(decorations string) (string, *semver.Version) {
	var (
		tag     string
		version *semver.Version
	)

	for ref := range strings.SplitSeq(decorations, ", ") {
		name, ok := strings.CutPrefix(strings.TrimSpace(ref), "tag: ")
		if !ok {
			continue
		}

		v, err := semver.NewVersion(strings.TrimPrefix(name, "v"))
		if err != nil {
			continue
		}

		if version == nil || version.LessThan(*v) {
			tag, version = name, v
		}
	}

	return tag, version
}
