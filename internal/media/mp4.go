package media

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var ErrNoDuration = errors.New("no mvhd box found in mp4 stream")

// ProbeMP4Duration reads the duration of an MP4/MOV upload in whole seconds
// by walking the top-level boxes to moov/mvhd. This is the server-side
// equivalent of probing a media element's metadata before upload.
func ProbeMP4Duration(r io.ReadSeeker) (int, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek mp4 stream: %w", err)
	}

	for {
		size, boxType, headerLen, err := readBoxHeader(r)
		if err == io.EOF {
			return 0, ErrNoDuration
		}
		if err != nil {
			return 0, err
		}

		if boxType == "moov" {
			return findMvhd(r, size-headerLen)
		}

		if _, err := r.Seek(size-headerLen, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("skip %s box: %w", boxType, err)
		}
	}
}

// findMvhd scans the children of a moov box for mvhd and decodes its
// timescale and duration.
func findMvhd(r io.ReadSeeker, remaining int64) (int, error) {
	for remaining > 8 {
		size, boxType, headerLen, err := readBoxHeader(r)
		if err != nil {
			return 0, err
		}

		if boxType == "mvhd" {
			return readMvhd(r)
		}

		if _, err := r.Seek(size-headerLen, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("skip %s box: %w", boxType, err)
		}
		remaining -= size
	}

	return 0, ErrNoDuration
}

func readMvhd(r io.Reader) (int, error) {
	var versionFlags [4]byte
	if _, err := io.ReadFull(r, versionFlags[:]); err != nil {
		return 0, fmt.Errorf("read mvhd version: %w", err)
	}

	var timescale uint32
	var duration uint64

	switch versionFlags[0] {
	case 0:
		// creation + modification times, then timescale and duration
		var body [16]byte
		if _, err := io.ReadFull(r, body[:]); err != nil {
			return 0, fmt.Errorf("read mvhd body: %w", err)
		}
		timescale = binary.BigEndian.Uint32(body[8:12])
		duration = uint64(binary.BigEndian.Uint32(body[12:16]))
	case 1:
		var body [28]byte
		if _, err := io.ReadFull(r, body[:]); err != nil {
			return 0, fmt.Errorf("read mvhd body: %w", err)
		}
		timescale = binary.BigEndian.Uint32(body[16:20])
		duration = binary.BigEndian.Uint64(body[20:28])
	default:
		return 0, fmt.Errorf("unsupported mvhd version %d", versionFlags[0])
	}

	if timescale == 0 {
		return 0, errors.New("mvhd timescale is zero")
	}

	return int(math.Round(float64(duration) / float64(timescale))), nil
}

func readBoxHeader(r io.Reader) (size int64, boxType string, headerLen int64, err error) {
	var header [8]byte
	if _, err = io.ReadFull(r, header[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, "", 0, err
	}

	size = int64(binary.BigEndian.Uint32(header[:4]))
	boxType = string(header[4:8])
	headerLen = 8

	// 64-bit box size
	if size == 1 {
		var large [8]byte
		if _, err = io.ReadFull(r, large[:]); err != nil {
			return 0, "", 0, fmt.Errorf("read large box size: %w", err)
		}
		size = int64(binary.BigEndian.Uint64(large[:]))
		headerLen = 16
	}

	if size < headerLen {
		return 0, "", 0, fmt.Errorf("invalid %s box size %d", boxType, size)
	}

	return size, boxType, headerLen, nil
}
