package pipeline

import (
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type summaryParquetRow struct {
	Source       string  `parquet:"name=source, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Code         string  `parquet:"name=code, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TrainingType string  `parquet:"name=training_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	DurationH    float64 `parquet:"name=duration_h, type=DOUBLE"`
	DistanceKM   float64 `parquet:"name=distance_km, type=DOUBLE"`
	SpeedKMH     float64 `parquet:"name=speed_kmh, type=DOUBLE"`
	Calories     float64 `parquet:"name=calories, type=DOUBLE"`
	Message      string  `parquet:"name=message, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// MarshalParquet encodes summaries as a snappy-compressed Parquet file in memory.
func MarshalParquet(summaries []Summary) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(summaryParquetRow), 4)
	if err != nil {
		return nil, err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, s := range summaries {
		row := summaryParquetRow{
			Source:       s.Source,
			Code:         s.Code,
			TrainingType: s.TrainingType,
			DurationH:    s.DurationH,
			DistanceKM:   s.DistanceKM,
			SpeedKMH:     s.SpeedKMH,
			Calories:     s.Calories,
			Message:      s.Message,
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, err
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return append([]byte(nil), fw.Bytes()...), nil
}
