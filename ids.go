package webmdemux

// Matroska/WebM element IDs. Values are the canonical EBML IDs with their
// length-marker bit retained, matching how they appear on the wire and in
// every reference implementation.
const (
	idEBMLHeader             uint32 = 0x1A45DFA3
	idEBMLVersion            uint32 = 0x4286
	idEBMLReadVersion        uint32 = 0x42F7
	idEBMLMaxIDLength        uint32 = 0x42F2
	idEBMLMaxSizeLength      uint32 = 0x42F3
	idEBMLDocType            uint32 = 0x4282
	idEBMLDocTypeVersion     uint32 = 0x4287
	idEBMLDocTypeReadVersion uint32 = 0x4285

	idSegment uint32 = 0x18538067

	idSeekHead uint32 = 0x114D9B74
	idSeek     uint32 = 0x4DBB
	idSeekID   uint32 = 0x53AB
	idSeekPos  uint32 = 0x53AC

	idInfo            uint32 = 0x1549A966
	idSegmentUID      uint32 = 0x73A4
	idTimestampScale  uint32 = 0x2AD7B1
	idDuration        uint32 = 0x4489
	idDateUTC         uint32 = 0x4461
	idTitle           uint32 = 0x7BA9
	idMuxingApp       uint32 = 0x4D80
	idWritingApp      uint32 = 0x5741

	idTracks          uint32 = 0x1654AE6B
	idTrackEntry      uint32 = 0xAE
	idTrackNumber     uint32 = 0xD7
	idTrackUID        uint32 = 0x73C5
	idTrackType       uint32 = 0x83
	idFlagEnabled     uint32 = 0xB9
	idFlagDefault     uint32 = 0x88
	idFlagForced      uint32 = 0x55AA
	idFlagLacing      uint32 = 0x9C
	idDefaultDuration uint32 = 0x23E383
	idTrackName       uint32 = 0x536E
	idLanguage        uint32 = 0x22B59C
	idCodecID         uint32 = 0x86
	idCodecPrivate    uint32 = 0x63A2
	idCodecName       uint32 = 0x258688
	idCodecDelay      uint32 = 0x56AA
	idSeekPreRoll     uint32 = 0x56BB
	idVideo           uint32 = 0xE0
	idAudio           uint32 = 0xE1
	idContentEncodings uint32 = 0x6D80

	idPixelWidth    uint32 = 0xB0
	idPixelHeight   uint32 = 0xBA
	idDisplayWidth  uint32 = 0x54B0
	idDisplayHeight uint32 = 0x54BA
	idFlagInterlaced uint32 = 0x9A
	idStereoMode     uint32 = 0x53B8
	idAlphaMode      uint32 = 0x53C0
	idPixelCropBottom uint32 = 0x54AA
	idPixelCropTop    uint32 = 0x54BB
	idPixelCropLeft   uint32 = 0x54CC
	idPixelCropRight  uint32 = 0x54DD

	idSamplingFrequency       uint32 = 0xB5
	idOutputSamplingFrequency uint32 = 0x78B5
	idChannels                uint32 = 0x9F
	idBitDepth                uint32 = 0x6264

	idContentEncoding       uint32 = 0x6240
	idContentEncodingOrder  uint32 = 0x5031
	idContentEncodingScope  uint32 = 0x5032
	idContentEncodingType   uint32 = 0x5033
	idContentCompression    uint32 = 0x5034
	idContentCompAlgo       uint32 = 0x4254
	idContentCompSettings   uint32 = 0x4255
	idContentEncryption     uint32 = 0x5035
	idContentEncAlgo        uint32 = 0x47E1
	idContentEncKeyID       uint32 = 0x47E2
	idContentEncAESSettings uint32 = 0x47E7
	idAESSettingsCipherMode uint32 = 0x47E8

	idCluster      uint32 = 0x1F43B675
	idTimestamp    uint32 = 0xE7
	idSimpleBlock  uint32 = 0xA3
	idBlockGroup   uint32 = 0xA0
	idBlock        uint32 = 0xA1
	idBlockDuration uint32 = 0x9B
	idReferenceBlock uint32 = 0xFB
	idDiscardPadding uint32 = 0x75A2
	idBlockAdditions uint32 = 0x75A1
	idBlockMore      uint32 = 0xA6
	idBlockAddID     uint32 = 0xEE
	idBlockAdditional uint32 = 0xA5

	idCues              uint32 = 0x1C53BB6B
	idCuePoint          uint32 = 0xBB
	idCueTime           uint32 = 0xB3
	idCueTrackPositions uint32 = 0xB7
	idCueTrack          uint32 = 0xF7
	idCueClusterPosition uint32 = 0xF1
	idCueBlockNumber     uint32 = 0x5378

	idChapters         uint32 = 0x1043A770
	idEditionEntry     uint32 = 0x45B9
	idChapterAtom      uint32 = 0xB6
	idChapterUID       uint32 = 0x73C4
	idChapterTimeStart uint32 = 0x91
	idChapterTimeEnd   uint32 = 0x92
	idChapterDisplay   uint32 = 0x80
	idChapString       uint32 = 0x85
	idChapLanguage     uint32 = 0x437C

	idTags          uint32 = 0x1254C367
	idTag           uint32 = 0x7373
	idTargets       uint32 = 0x63C0
	idTargetTypeValue uint32 = 0x68CA
	idSimpleTag     uint32 = 0x67C8
	idTagName       uint32 = 0x45A3
	idTagString     uint32 = 0x4487

	idAttachments      uint32 = 0x1941A469
	idAttachedFile     uint32 = 0x61A7
	idFileDescription  uint32 = 0x467E
	idFileName         uint32 = 0x466E
	idFileMimeType     uint32 = 0x4660
	idFileData         uint32 = 0x465C
	idFileUID          uint32 = 0x46AE
)

// trackTypeVideo and friends mirror spec.md §3.1's TrackType enum as the
// raw on-wire values.
const (
	trackTypeVideo    uint64 = 1
	trackTypeAudio    uint64 = 2
	trackTypeComplex  uint64 = 3
	trackTypeLogo     uint64 = 16
	trackTypeSubtitle uint64 = 17
	trackTypeButtons  uint64 = 18
	trackTypeControl  uint64 = 32
)

const (
	contentEncodingTypeCompression uint64 = 0
	contentEncodingTypeEncryption  uint64 = 1
)
