package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	r := NewPDFRenderer()

	out, err := r.RenderTable("Laporan Absensi Harian",
		[]string{"No", "Nama Siswa", "Status"},
		[][]string{
			{"1", "Ahmad", "Hadir"},
			{"2", "Bunga", "Libur"},
			{"3", "Citra"}, // baris pendek: kolom sisanya kosong
		})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderTableNoColumns(t *testing.T) {
	r := NewPDFRenderer()
	_, err := r.RenderTable("Laporan", nil, nil)
	require.Error(t, err)
}
