package utils

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"Sinegen/pkg/frame"
)

// WriteCapture stores frames as little-endian uint32 words, the same layout
// the codec uses on the wire. A ".txt" filename gets one "left right" line
// per frame instead.
func WriteCapture(filename string, frames []frame.Packed) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".txt") {
		err = EncodeText(file, frames)
	} else {
		err = binary.Write(file, binary.LittleEndian, frames)
	}
	if err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}

	return nil
}

func ReadCapture(filename string) ([]frame.Packed, error) {

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %v", err)
	}

	numElements := int(fileInfo.Size()) / binary.Size(frame.Packed(0))
	data := make([]frame.Packed, numElements)

	err = binary.Read(file, binary.LittleEndian, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}

	return data, nil
}

func EncodeText(w io.Writer, frames []frame.Packed) error {
	b := bufio.NewWriter(w)
	for _, f := range frames {
		if _, err := fmt.Fprintln(b, f.Left(), f.Right()); err != nil {
			return err
		}
	}
	return b.Flush()
}
