package webmdemux

import "github.com/andrebraga/webmdemux/ebml"

// matroskaSchema is the declarative grammar the segment assembler and
// cluster decoder walk with ebml.Descend. It covers every element spec.md
// §6.2 names plus the Chapters/Tags/Attachments/ContentEncodings/SeekHead
// children a complete port also parses (see SPEC_FULL.md).
var matroskaSchema = ebml.Schema{
	idEBMLHeader: {ID: idEBMLHeader, Name: "EBML", Parent: 0, Type: ebml.TypeMaster, Occurrence: ebml.Once},
	idEBMLVersion:            {ID: idEBMLVersion, Name: "EBMLVersion", Parent: idEBMLHeader, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idEBMLReadVersion:        {ID: idEBMLReadVersion, Name: "EBMLReadVersion", Parent: idEBMLHeader, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idEBMLMaxIDLength:        {ID: idEBMLMaxIDLength, Name: "EBMLMaxIDLength", Parent: idEBMLHeader, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idEBMLMaxSizeLength:      {ID: idEBMLMaxSizeLength, Name: "EBMLMaxSizeLength", Parent: idEBMLHeader, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idEBMLDocType:            {ID: idEBMLDocType, Name: "DocType", Parent: idEBMLHeader, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},
	idEBMLDocTypeVersion:     {ID: idEBMLDocTypeVersion, Name: "DocTypeVersion", Parent: idEBMLHeader, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idEBMLDocTypeReadVersion: {ID: idEBMLDocTypeReadVersion, Name: "DocTypeReadVersion", Parent: idEBMLHeader, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},

	idSegment: {ID: idSegment, Name: "Segment", Parent: 0, Type: ebml.TypeMaster, Occurrence: ebml.Once},

	idSeekHead: {ID: idSeekHead, Name: "SeekHead", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.MultiOptional},
	idSeek:     {ID: idSeek, Name: "Seek", Parent: idSeekHead, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idSeekID:   {ID: idSeekID, Name: "SeekID", Parent: idSeek, Type: ebml.TypeBinary, Occurrence: ebml.Once},
	idSeekPos:  {ID: idSeekPos, Name: "SeekPosition", Parent: idSeek, Type: ebml.TypeUint, Occurrence: ebml.Once},

	idInfo:           {ID: idInfo, Name: "Info", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.Once},
	idSegmentUID:     {ID: idSegmentUID, Name: "SegmentUID", Parent: idInfo, Type: ebml.TypeBinary, Occurrence: ebml.OnceOptional},
	idTimestampScale: {ID: idTimestampScale, Name: "TimestampScale", Parent: idInfo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idDuration:       {ID: idDuration, Name: "Duration", Parent: idInfo, Type: ebml.TypeFloat, Occurrence: ebml.OnceOptional},
	idDateUTC:        {ID: idDateUTC, Name: "DateUTC", Parent: idInfo, Type: ebml.TypeDate, Occurrence: ebml.OnceOptional},
	idTitle:          {ID: idTitle, Name: "Title", Parent: idInfo, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},
	idMuxingApp:      {ID: idMuxingApp, Name: "MuxingApp", Parent: idInfo, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},
	idWritingApp:     {ID: idWritingApp, Name: "WritingApp", Parent: idInfo, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},

	idTracks:           {ID: idTracks, Name: "Tracks", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idTrackEntry:       {ID: idTrackEntry, Name: "TrackEntry", Parent: idTracks, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idTrackNumber:      {ID: idTrackNumber, Name: "TrackNumber", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idTrackUID:         {ID: idTrackUID, Name: "TrackUID", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idTrackType:        {ID: idTrackType, Name: "TrackType", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idFlagEnabled:      {ID: idFlagEnabled, Name: "FlagEnabled", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idFlagDefault:      {ID: idFlagDefault, Name: "FlagDefault", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idFlagForced:       {ID: idFlagForced, Name: "FlagForced", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idFlagLacing:       {ID: idFlagLacing, Name: "FlagLacing", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idDefaultDuration:  {ID: idDefaultDuration, Name: "DefaultDuration", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idTrackName:        {ID: idTrackName, Name: "Name", Parent: idTrackEntry, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},
	idLanguage:          {ID: idLanguage, Name: "Language", Parent: idTrackEntry, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},
	idCodecID:           {ID: idCodecID, Name: "CodecID", Parent: idTrackEntry, Type: ebml.TypeString, Occurrence: ebml.Once},
	idCodecPrivate:      {ID: idCodecPrivate, Name: "CodecPrivate", Parent: idTrackEntry, Type: ebml.TypeBinary, Occurrence: ebml.OnceOptional},
	idCodecName:         {ID: idCodecName, Name: "CodecName", Parent: idTrackEntry, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},
	idCodecDelay:        {ID: idCodecDelay, Name: "CodecDelay", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idSeekPreRoll:       {ID: idSeekPreRoll, Name: "SeekPreRoll", Parent: idTrackEntry, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idVideo:             {ID: idVideo, Name: "Video", Parent: idTrackEntry, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idAudio:             {ID: idAudio, Name: "Audio", Parent: idTrackEntry, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idContentEncodings:  {ID: idContentEncodings, Name: "ContentEncodings", Parent: idTrackEntry, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},

	idPixelWidth:     {ID: idPixelWidth, Name: "PixelWidth", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idPixelHeight:    {ID: idPixelHeight, Name: "PixelHeight", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idDisplayWidth:   {ID: idDisplayWidth, Name: "DisplayWidth", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idDisplayHeight:  {ID: idDisplayHeight, Name: "DisplayHeight", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idFlagInterlaced: {ID: idFlagInterlaced, Name: "FlagInterlaced", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idStereoMode:      {ID: idStereoMode, Name: "StereoMode", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idAlphaMode:       {ID: idAlphaMode, Name: "AlphaMode", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idPixelCropBottom: {ID: idPixelCropBottom, Name: "PixelCropBottom", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idPixelCropTop:    {ID: idPixelCropTop, Name: "PixelCropTop", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idPixelCropLeft:   {ID: idPixelCropLeft, Name: "PixelCropLeft", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idPixelCropRight:  {ID: idPixelCropRight, Name: "PixelCropRight", Parent: idVideo, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},

	idSamplingFrequency:       {ID: idSamplingFrequency, Name: "SamplingFrequency", Parent: idAudio, Type: ebml.TypeFloat, Occurrence: ebml.OnceOptional},
	idOutputSamplingFrequency: {ID: idOutputSamplingFrequency, Name: "OutputSamplingFrequency", Parent: idAudio, Type: ebml.TypeFloat, Occurrence: ebml.OnceOptional},
	idChannels:                {ID: idChannels, Name: "Channels", Parent: idAudio, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idBitDepth:                {ID: idBitDepth, Name: "BitDepth", Parent: idAudio, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},

	idContentEncoding:       {ID: idContentEncoding, Name: "ContentEncoding", Parent: idContentEncodings, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idContentEncodingOrder:  {ID: idContentEncodingOrder, Name: "ContentEncodingOrder", Parent: idContentEncoding, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idContentEncodingScope:  {ID: idContentEncodingScope, Name: "ContentEncodingScope", Parent: idContentEncoding, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idContentEncodingType:   {ID: idContentEncodingType, Name: "ContentEncodingType", Parent: idContentEncoding, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idContentCompression:    {ID: idContentCompression, Name: "ContentCompression", Parent: idContentEncoding, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idContentCompAlgo:       {ID: idContentCompAlgo, Name: "ContentCompAlgo", Parent: idContentCompression, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idContentCompSettings:   {ID: idContentCompSettings, Name: "ContentCompSettings", Parent: idContentCompression, Type: ebml.TypeBinary, Occurrence: ebml.OnceOptional},
	idContentEncryption:     {ID: idContentEncryption, Name: "ContentEncryption", Parent: idContentEncoding, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idContentEncAlgo:        {ID: idContentEncAlgo, Name: "ContentEncAlgo", Parent: idContentEncryption, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idContentEncKeyID:       {ID: idContentEncKeyID, Name: "ContentEncKeyID", Parent: idContentEncryption, Type: ebml.TypeBinary, Occurrence: ebml.OnceOptional},
	idContentEncAESSettings: {ID: idContentEncAESSettings, Name: "ContentEncAESSettings", Parent: idContentEncryption, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idAESSettingsCipherMode: {ID: idAESSettingsCipherMode, Name: "AESSettingsCipherMode", Parent: idContentEncAESSettings, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},

	idCluster:         {ID: idCluster, Name: "Cluster", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.MultiOptional},
	idTimestamp:       {ID: idTimestamp, Name: "Timestamp", Parent: idCluster, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idSimpleBlock:     {ID: idSimpleBlock, Name: "SimpleBlock", Parent: idCluster, Type: ebml.TypeBinary, Occurrence: ebml.MultiOptional},
	idBlockGroup:      {ID: idBlockGroup, Name: "BlockGroup", Parent: idCluster, Type: ebml.TypeMaster, Occurrence: ebml.MultiOptional},
	idBlock:           {ID: idBlock, Name: "Block", Parent: idBlockGroup, Type: ebml.TypeBinary, Occurrence: ebml.Once},
	idBlockDuration:   {ID: idBlockDuration, Name: "BlockDuration", Parent: idBlockGroup, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idReferenceBlock:  {ID: idReferenceBlock, Name: "ReferenceBlock", Parent: idBlockGroup, Type: ebml.TypeInt, Occurrence: ebml.MultiOptional},
	idDiscardPadding:  {ID: idDiscardPadding, Name: "DiscardPadding", Parent: idBlockGroup, Type: ebml.TypeInt, Occurrence: ebml.OnceOptional},
	idBlockAdditions:  {ID: idBlockAdditions, Name: "BlockAdditions", Parent: idBlockGroup, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idBlockMore:       {ID: idBlockMore, Name: "BlockMore", Parent: idBlockAdditions, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idBlockAddID:      {ID: idBlockAddID, Name: "BlockAddID", Parent: idBlockMore, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idBlockAdditional: {ID: idBlockAdditional, Name: "BlockAdditional", Parent: idBlockMore, Type: ebml.TypeBinary, Occurrence: ebml.Once},

	idCues:               {ID: idCues, Name: "Cues", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idCuePoint:           {ID: idCuePoint, Name: "CuePoint", Parent: idCues, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idCueTime:            {ID: idCueTime, Name: "CueTime", Parent: idCuePoint, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idCueTrackPositions:  {ID: idCueTrackPositions, Name: "CueTrackPositions", Parent: idCuePoint, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idCueTrack:           {ID: idCueTrack, Name: "CueTrack", Parent: idCueTrackPositions, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idCueClusterPosition: {ID: idCueClusterPosition, Name: "CueClusterPosition", Parent: idCueTrackPositions, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idCueBlockNumber:     {ID: idCueBlockNumber, Name: "CueBlockNumber", Parent: idCueTrackPositions, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},

	idChapters:         {ID: idChapters, Name: "Chapters", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idEditionEntry:     {ID: idEditionEntry, Name: "EditionEntry", Parent: idChapters, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idChapterAtom:      {ID: idChapterAtom, Name: "ChapterAtom", Parent: idEditionEntry, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idChapterUID:       {ID: idChapterUID, Name: "ChapterUID", Parent: idChapterAtom, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idChapterTimeStart: {ID: idChapterTimeStart, Name: "ChapterTimeStart", Parent: idChapterAtom, Type: ebml.TypeUint, Occurrence: ebml.Once},
	idChapterTimeEnd:   {ID: idChapterTimeEnd, Name: "ChapterTimeEnd", Parent: idChapterAtom, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idChapterDisplay:   {ID: idChapterDisplay, Name: "ChapterDisplay", Parent: idChapterAtom, Type: ebml.TypeMaster, Occurrence: ebml.MultiOptional},
	idChapString:       {ID: idChapString, Name: "ChapString", Parent: idChapterDisplay, Type: ebml.TypeString, Occurrence: ebml.Once},
	idChapLanguage:     {ID: idChapLanguage, Name: "ChapLanguage", Parent: idChapterDisplay, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},

	idTags:            {ID: idTags, Name: "Tags", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idTag:              {ID: idTag, Name: "Tag", Parent: idTags, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idTargets:          {ID: idTargets, Name: "Targets", Parent: idTag, Type: ebml.TypeMaster, Occurrence: ebml.Once},
	idTargetTypeValue:  {ID: idTargetTypeValue, Name: "TargetTypeValue", Parent: idTargets, Type: ebml.TypeUint, Occurrence: ebml.OnceOptional},
	idSimpleTag:        {ID: idSimpleTag, Name: "SimpleTag", Parent: idTag, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idTagName:          {ID: idTagName, Name: "TagName", Parent: idSimpleTag, Type: ebml.TypeString, Occurrence: ebml.Once},
	idTagString:        {ID: idTagString, Name: "TagString", Parent: idSimpleTag, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},

	idAttachments:     {ID: idAttachments, Name: "Attachments", Parent: idSegment, Type: ebml.TypeMaster, Occurrence: ebml.OnceOptional},
	idAttachedFile:    {ID: idAttachedFile, Name: "AttachedFile", Parent: idAttachments, Type: ebml.TypeMaster, Occurrence: ebml.Multi},
	idFileDescription: {ID: idFileDescription, Name: "FileDescription", Parent: idAttachedFile, Type: ebml.TypeString, Occurrence: ebml.OnceOptional},
	idFileName:        {ID: idFileName, Name: "FileName", Parent: idAttachedFile, Type: ebml.TypeString, Occurrence: ebml.Once},
	idFileMimeType:    {ID: idFileMimeType, Name: "FileMimeType", Parent: idAttachedFile, Type: ebml.TypeString, Occurrence: ebml.Once},
	idFileData:        {ID: idFileData, Name: "FileData", Parent: idAttachedFile, Type: ebml.TypeBinary, Occurrence: ebml.Once},
	idFileUID:         {ID: idFileUID, Name: "FileUID", Parent: idAttachedFile, Type: ebml.TypeUint, Occurrence: ebml.Once},
}

// childAllower returns the allowed-child predicate ebml.Descend needs for
// a given parent ID, built directly from the schema table.
func childAllower(parent uint32) func(id uint32) bool {
	return func(id uint32) bool { return matroskaSchema.IsChild(parent, id) }
}
