package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/repository"
	"github.com/logicshrey/Learnopolis-v2/internal/util"
	"github.com/logicshrey/Learnopolis-v2/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VideoService struct {
	VideoRepo *repository.VideoRepository
	Storage   *StorageService
}

func NewVideoService(videoRepo *repository.VideoRepository, storage *StorageService) *VideoService {
	return &VideoService{VideoRepo: videoRepo, Storage: storage}
}

func (s *VideoService) ListVideos(subject, difficulty string) ([]model.Video, error) {
	return s.VideoRepo.Find(subject, difficulty)
}

// UploadVideo 管理员上传课程视频：落临时文件、探测时长、抽封面帧、推到对象存储
func (s *VideoService) UploadVideo(ctx context.Context, file *multipart.FileHeader, video *model.Video) (*model.Video, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("unsupported video extension %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeVideo})
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, err
	}

	// ffmpeg 探测需要落盘的临时文件
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return nil, err
	}
	if _, err := tmp.ReadFrom(src); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, err
	}
	tmp.Close()
	defer os.Remove(tmpPath)

	info, err := util.GetVideoInfo(tmpPath)
	if err != nil {
		return nil, err
	}
	video.Duration = info.Duration

	objectKey := fmt.Sprintf("videos/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.Storage.UploadFile(ctx, objectKey, tmpPath, mimeType)
	if err != nil {
		return nil, err
	}
	video.URL = url
	video.ObjectKey = objectKey

	// 封面帧抽取失败只记日志
	thumbPath := tmpPath + ".jpg"
	if err := util.GenerateThumbnail(tmpPath, thumbPath, "00:00:01"); err == nil {
		defer os.Remove(thumbPath)
		thumbKey := fmt.Sprintf("thumbnails/%s.jpg", uuid.New().String())
		if thumbURL, err := s.Storage.UploadFile(ctx, thumbKey, thumbPath, "image/jpeg"); err == nil {
			video.Thumbnail = thumbURL
		}
	} else {
		logger.Log.Warn("Failed to generate video thumbnail", zap.String("video", video.Title), zap.Error(err))
	}

	if err := s.VideoRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteVideo 先删对象存储里的文件，再删记录；存储删除失败只告警
func (s *VideoService) DeleteVideo(ctx context.Context, videoID uint) error {
	video, err := s.VideoRepo.FindByID(videoID)
	if err != nil {
		return util.ErrVideoNotFound
	}
	if video.ObjectKey != "" {
		if err := s.Storage.Delete(ctx, video.ObjectKey); err != nil {
			logger.Log.Warn("Failed to delete video object", zap.String("key", video.ObjectKey), zap.Error(err))
		}
	}
	return s.VideoRepo.Delete(videoID)
}

// MarkCompleted 幂等：同一视频重复标记只记一次
func (s *VideoService) MarkCompleted(userID, videoID uint) error {
	if _, err := s.VideoRepo.FindByID(videoID); err != nil {
		return util.ErrVideoNotFound
	}
	return s.VideoRepo.MarkCompleted(userID, videoID)
}

func (s *VideoService) GetCompletedIDs(userID uint) ([]uint, error) {
	return s.VideoRepo.FindCompletedIDs(userID)
}
