// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import "fmt"

// TagSecurityClassification is the SecurityClassification tag.
const TagSecurityClassification uint16 = 0x9212

// FieldType is a TIFF field type code as stored in a directory entry.
type FieldType uint16

const (
	TypeUnsignedByte  FieldType = 1
	TypeASCII         FieldType = 2
	TypeUnsignedShort FieldType = 3
	TypeUnsignedLong  FieldType = 4
	TypeUnsignedRat   FieldType = 5
	TypeSignedByte    FieldType = 6
	TypeUndef         FieldType = 7
	TypeSignedShort   FieldType = 8
	TypeSignedLong    FieldType = 9
	TypeSignedRat     FieldType = 10
	TypeFloat         FieldType = 11
	TypeDouble        FieldType = 12
	TypeIFD           FieldType = 13
)

var fieldTypeNames = map[FieldType]string{
	TypeUnsignedByte:  "BYTE",
	TypeASCII:         "ASCII",
	TypeUnsignedShort: "SHORT",
	TypeUnsignedLong:  "LONG",
	TypeUnsignedRat:   "RATIONAL",
	TypeSignedByte:    "SBYTE",
	TypeUndef:         "UNDEFINED",
	TypeSignedShort:   "SSHORT",
	TypeSignedLong:    "SLONG",
	TypeSignedRat:     "SRATIONAL",
	TypeFloat:         "FLOAT",
	TypeDouble:        "DOUBLE",
	TypeIFD:           "IFD",
}

// Size in bytes of each type.
var fieldTypeSize = map[FieldType]uint32{
	TypeUnsignedByte:  1,
	TypeASCII:         1,
	TypeUnsignedShort: 2,
	TypeUnsignedLong:  4,
	TypeUnsignedRat:   8,
	TypeSignedByte:    1,
	TypeUndef:         1,
	TypeSignedShort:   2,
	TypeSignedLong:    4,
	TypeSignedRat:     8,
	TypeFloat:         4,
	TypeDouble:        8,
	TypeIFD:           4,
}

func (t FieldType) String() string {
	if name, found := fieldTypeNames[t]; found {
		return name
	}
	return fmt.Sprintf("FieldType(%d)", uint16(t))
}

// Size returns the size in bytes of one value of t, 0 if unknown.
func (t FieldType) Size() uint32 {
	return fieldTypeSize[t]
}

// Common tags, baseline TIFF 6.0 plus the EXIF ones seen in IFD0.
var tagNames = map[uint16]string{
	0x00fe: "NewSubfileType",
	0x00ff: "SubfileType",
	0x0100: "ImageWidth",
	0x0101: "ImageLength",
	0x0102: "BitsPerSample",
	0x0103: "Compression",
	0x0106: "PhotometricInterpretation",
	0x010d: "DocumentName",
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0111: "StripOffsets",
	0x0112: "Orientation",
	0x0115: "SamplesPerPixel",
	0x0116: "RowsPerStrip",
	0x0117: "StripByteCounts",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x011c: "PlanarConfiguration",
	0x0128: "ResolutionUnit",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013b: "Artist",
	0x013d: "Predictor",
	0x0140: "ColorMap",
	0x0142: "TileWidth",
	0x0143: "TileLength",
	0x0144: "TileOffsets",
	0x0145: "TileByteCounts",
	0x014a: "SubIFDs",
	0x0152: "ExtraSamples",
	0x0153: "SampleFormat",
	0x02bc: "XMP",
	0x8298: "Copyright",
	0x83bb: "IPTC",
	0x8649: "PhotoshopSettings",
	0x8769: "ExifOffset",
	0x8773: "ICCProfile",
	0x8825: "GPSInfo",
	0x9212: "SecurityClassification",
	0xa005: "InteropOffset",
}

// TagName returns the name of tag, or UnknownPrefix followed by its hex ID.
func TagName(tag uint16) string {
	if name, found := tagNames[tag]; found {
		return name
	}
	return fmt.Sprintf("%s0x%04x", UnknownPrefix, tag)
}

// UnknownPrefix is used as prefix for unknown tags.
const UnknownPrefix = "UnknownTag_"
