package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	archiver "github.com/mholt/archiver/v3"
)

const linterName = `golangci-lint`
const linterVersion = `v1.59.1`

func cilint() {
	executable := linterExecutablePath()
	if _, err := os.Stat(executable); os.IsNotExist(err) {
		resultExecutable, downloadErr := downloadAndUnpackLinter()
		if downloadErr != nil {
			b.AddError(downloadErr)
			return
		}
		if executable != resultExecutable {
			b.AddError(fmt.Errorf(
				"wrong exec version; expected: %v; actual: %v",
				executable, resultExecutable,
			))
			return
		}
	}

	b.Run(executable, `-j`, parallelism, `run`, `--build-tags`, `debug`)
	b.Run(executable, `-j`, parallelism, `run`)
}

func linterExecutablePath() string {
	executableFileName := linterName
	if runtime.GOOS == "windows" {
		executableFileName += ".exe"
	}
	return filepath.Join(binDirName, linterFileName(), executableFileName)
}

func downloadAndUnpackLinter() (string, error) {
	filePath, downloadErr := downloadLinter()
	if downloadErr != nil {
		return "", downloadErr
	}
	defer os.Remove(filePath)

	decompressionErr := archiver.Unarchive(filePath, binDirName)
	if decompressionErr != nil {
		return "", fmt.Errorf("can't decompress file. File: %v; Error: %v", filePath, decompressionErr)
	}
	return linterExecutablePath(), nil
}

func downloadLinter() (string, error) {
	archiveType := linterArchiveType()
	downloadUrl := fmt.Sprintf(
		"https://github.com/golangci/golangci-lint/"+
			"releases/download/%s/%s.%s",
		linterVersion, linterFileName(), archiveType,
	)
	fmt.Printf("Going to download linter: %s\n", downloadUrl)

	resp, getErr := http.Get(downloadUrl)
	if getErr != nil {
		return "", fmt.Errorf("can't get linter. URL: `%v`; Error: %v", downloadUrl, getErr)
	}
	respBody := resp.Body
	defer respBody.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("can't get linter. URL: `%v`; Code: %v", downloadUrl, resp.Status)
	}

	// archiver picks the format by extension
	destFile, tempFileErr := os.CreateTemp("", "*."+archiveType)
	if tempFileErr != nil {
		return "", fmt.Errorf("can't store linter. URL: `%v`; Error: %v", downloadUrl, tempFileErr)
	}
	defer destFile.Close()

	_, copyErr := io.Copy(destFile, respBody)
	if copyErr != nil {
		return "", fmt.Errorf("can't download linter. URL: `%v`; Error: %v", downloadUrl, copyErr)
	}
	return destFile.Name(), nil
}

func linterArchiveType() string {
	if runtime.GOOS == "windows" {
		return "zip"
	}
	return "tar.gz"
}

func linterFileName() string {
	return fmt.Sprintf("golangci-lint-%s-%s-%s", linterVersion[1:], runtime.GOOS, runtime.GOARCH)
}
