package container

import (
	"fmt"
	"log"
)

// QueueNode 队列中的节点
// 功能：表示先进先出队列中的一个节点
// 说明：节点由队列内部创建，外部只读
type QueueNode[T any] struct {
	parent *Queue[T]     // 所属队列
	next   *QueueNode[T] // 后继节点（靠近队尾）
	Value  T             // 节点值
}

// Next 获取节点的下一个节点
// 功能：返回队列中靠近队尾方向的后继节点
// 返回：后继节点指针，如果是队尾节点则返回nil
func (n *QueueNode[T]) Next() *QueueNode[T] {
	return n.next
}

// Queue 单向链表实现的先进先出队列
// 功能：支持队尾入队、队首出队、按序遍历
// 说明：零值可用，元素顺序即入队顺序，队列不会重排元素
type Queue[T any] struct {
	ID         string        // 队列标识符
	head, tail *QueueNode[T] // 队首和队尾节点
	length     int           // 队列长度
}

// String 获取队列的字符串表示
func (q *Queue[T]) String() string {
	return fmt.Sprintf("Queue{ID:%v, Len:%v}", q.ID, q.length)
}

// Len 获取队列长度
func (q *Queue[T]) Len() int {
	return q.length
}

// First 获取队首节点
// 返回：队首节点指针，如果队列为空则返回nil
func (q *Queue[T]) First() *QueueNode[T] {
	return q.head
}

// Last 获取队尾节点
// 返回：队尾节点指针，如果队列为空则返回nil
func (q *Queue[T]) Last() *QueueNode[T] {
	return q.tail
}

// PushBack 向队尾追加元素
// 功能：创建新节点并链接到队尾
// 参数：value-要追加的元素
func (q *Queue[T]) PushBack(value T) {
	add := &QueueNode[T]{parent: q, Value: value}
	if q.tail == nil {
		q.head = add
	} else {
		q.tail.next = add
	}
	q.tail = add
	q.length++
}

// PopFront 移除并返回队首元素
// 功能：从队首摘下一个节点
// 返回：队首元素和true；队列为空时返回零值和false
func (q *Queue[T]) PopFront() (value T, ok bool) {
	node := q.head
	if node == nil {
		return
	}
	if node.parent != q {
		log.Panic("pop node from wrong queue")
	}
	q.head = node.next
	if q.head == nil {
		q.tail = nil
	}
	node.next = nil
	node.parent = nil
	q.length--
	return node.Value, true
}

// Values 获取队列中所有元素（队首到队尾）
// 功能：返回元素的有序副本，修改副本不影响队列
func (q *Queue[T]) Values() []T {
	values := make([]T, q.length)
	for i, node := 0, q.head; node != nil; i, node = i+1, node.next {
		values[i] = node.Value
	}
	return values
}

// Clear 清空队列
func (q *Queue[T]) Clear() {
	for node := q.head; node != nil; {
		next := node.next
		node.next = nil
		node.parent = nil
		node = next
	}
	q.head = nil
	q.tail = nil
	q.length = 0
}
